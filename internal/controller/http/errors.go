package http

import (
	"errors"
	"net/http"

	"snapboard/internal/entity"
)

// errorStatus maps domain errors onto HTTP statuses. Unauthorized is a 403,
// not a 404: non-authors learn the resource exists but may not touch it.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicateNickname):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
