package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"

	"snapboard/internal/entity"
	"snapboard/internal/repo/persistent"
	"snapboard/pkg/logger"
	"snapboard/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

type ProfileUseCase interface {
	UpdateProfile(actorID, nickname, password string, avatarFile *multipart.FileHeader) (*entity.User, error)
	ChangeNickname(actorID, nickname string) (*entity.User, error)
	ChangePassword(actorID, password string) (*entity.User, error)
	ChangeAvatar(actorID string, avatarFile *multipart.FileHeader) (*entity.User, error)
}

type profileUseCase struct {
	userRepo persistent.UserRepository
	store    storage.Store
	logger   *logger.Logger
}

func NewProfileUseCase(userRepo persistent.UserRepository, store storage.Store, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

// UpdateProfile always applies the nickname; the password is rehashed only
// when a new one is supplied and the avatar replaced only when a new file is
// uploaded.
func (uc *profileUseCase) UpdateProfile(actorID, nickname, password string, avatarFile *multipart.FileHeader) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	if err := validateNickname(nickname); err != nil {
		return nil, err
	}
	if err := uc.checkNicknameFree(nickname, actorID); err != nil {
		return nil, err
	}
	user.Nickname = nickname

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, fmt.Errorf("failed to update profile")
		}
		user.Password = string(hashed)
	}

	if avatarFile != nil {
		if err := uc.replaceAvatar(user, avatarFile); err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *profileUseCase) ChangeNickname(actorID, nickname string) (*entity.User, error) {
	if err := validateNickname(nickname); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkNicknameFree(nickname, actorID); err != nil {
		return nil, err
	}

	user.Nickname = nickname
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *profileUseCase) ChangePassword(actorID, password string) (*entity.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to change password")
	}

	user.Password = string(hashed)
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *profileUseCase) ChangeAvatar(actorID string, avatarFile *multipart.FileHeader) (*entity.User, error) {
	if avatarFile == nil {
		return nil, fmt.Errorf("%w: avatar file is required", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	if err := uc.replaceAvatar(user, avatarFile); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *profileUseCase) checkNicknameFree(nickname, actorID string) error {
	existing, err := uc.userRepo.GetByNickname(nickname)
	if err == nil && existing.ID != actorID {
		return entity.ErrDuplicateNickname
	}
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return err
	}
	return nil
}

func (uc *profileUseCase) replaceAvatar(user *entity.User, avatarFile *multipart.FileHeader) error {
	name, err := saveImage(uc.store, storage.KindAvatar, avatarFile, avatarMaxSize)
	if err != nil {
		return err
	}

	if user.Avatar != "" && user.Avatar != entity.DefaultAvatar {
		if err := uc.store.Delete(storage.KindAvatar, user.Avatar); err != nil {
			uc.logger.Error("Failed to remove old avatar %s: %v", user.Avatar, err)
		}
	}

	user.Avatar = name
	return nil
}
