package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"
	"unicode/utf8"

	"snapboard/internal/entity"
	"snapboard/internal/repo/persistent"
	"snapboard/pkg/jwt"
	"snapboard/pkg/logger"
	"snapboard/pkg/session"
	"snapboard/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

const (
	nicknameMinLen = 2
	nicknameMaxLen = 20
)

type AuthUseCase interface {
	Register(nickname, password string, avatarFile *multipart.FileHeader) (*entity.User, error)
	Login(nickname, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	sessions   *session.Store
	store      storage.Store
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	sessions *session.Store,
	store storage.Store,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		store:      store,
		logger:     logger,
	}
}

func validateNickname(nickname string) error {
	n := utf8.RuneCountInString(nickname)
	if n < nicknameMinLen || n > nicknameMaxLen {
		return fmt.Errorf("%w: nickname must be %d-%d characters", entity.ErrValidation, nicknameMinLen, nicknameMaxLen)
	}
	return nil
}

func (uc *authUseCase) Register(nickname, password string, avatarFile *multipart.FileHeader) (*entity.User, error) {
	if err := validateNickname(nickname); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", entity.ErrValidation)
	}

	if _, err := uc.userRepo.GetByNickname(nickname); err == nil {
		return nil, entity.ErrDuplicateNickname
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	avatar := entity.DefaultAvatar
	if avatarFile != nil {
		name, err := saveImage(uc.store, storage.KindAvatar, avatarFile, avatarMaxSize)
		if err != nil {
			return nil, err
		}
		avatar = name
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Nickname: nickname,
		Password: string(hashedPassword),
		Avatar:   avatar,
	}

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, entity.ErrDuplicateNickname) {
			return nil, err
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

// Login verifies the supplied password against the stored hash. The error is
// the same whether the nickname is unknown or the password is wrong.
func (uc *authUseCase) Login(nickname, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByNickname(nickname)
	if err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Nickname)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.sessions == nil {
		return nil
	}
	return uc.sessions.Revoke(ctx, tokenID, expiresAt)
}
