package entity

import "errors"

var (
	// ErrNotFound: the requested post or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized: the actor is not the resource's author. Distinct from
	// ErrNotFound; existence is disclosed to non-authors.
	ErrUnauthorized = errors.New("not authorized")
	// ErrDuplicateNickname: registration or rename hit an existing nickname.
	ErrDuplicateNickname = errors.New("nickname already taken")
	// ErrInvalidCredentials: login failed; deliberately does not say whether
	// the nickname or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation: a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
)
