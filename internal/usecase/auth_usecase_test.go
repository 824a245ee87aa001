package usecase

import (
	"context"
	"testing"
	"time"

	"snapboard/internal/entity"
	"snapboard/internal/repo/persistent"
	"snapboard/pkg/jwt"
	"snapboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByNickname(nickname string) (*entity.User, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func newTestAuthUseCase(userRepo persistent.UserRepository) AuthUseCase {
	jwtService := jwt.NewService("test-secret")
	return NewAuthUseCase(userRepo, jwtService, nil, &fakeStore{}, logger.New())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister_NewUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	mockRepo.On("GetByNickname", "alice").Return(nil, entity.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := uc.Register("alice", "secret", nil)

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Nickname)
	assert.Equal(t, entity.DefaultAvatar, user.Avatar)
	assert.Empty(t, user.Password)

	mockRepo.AssertExpectations(t)
}

func TestRegister_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	var storedHash string
	mockRepo.On("GetByNickname", "alice").Return(nil, entity.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		storedHash = args.Get(0).(*entity.User).Password
	}).Return(nil)

	_, err := uc.Register("alice", "secret", nil)

	assert.NoError(t, err)
	assert.NotEqual(t, "secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")))
}

func TestRegister_NicknameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	existing := &entity.User{ID: "user-123", Nickname: "alice"}
	mockRepo.On("GetByNickname", "alice").Return(existing, nil)

	_, err := uc.Register("alice", "secret", nil)

	assert.ErrorIs(t, err, entity.ErrDuplicateNickname)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_NicknameTooShort(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	_, err := uc.Register("a", "secret", nil)

	assert.ErrorIs(t, err, entity.ErrValidation)
	mockRepo.AssertNotCalled(t, "GetByNickname")
}

func TestRegister_NicknameTooLong(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	_, err := uc.Register("this-nickname-is-way-too-long", "secret", nil)

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRegister_EmptyPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	_, err := uc.Register("alice", "", nil)

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRegister_WithAvatar(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := jwt.NewService("test-secret")
	store := &fakeStore{}
	uc := NewAuthUseCase(mockRepo, jwtService, nil, store, logger.New())

	var created *entity.User
	mockRepo.On("GetByNickname", "alice").Return(nil, entity.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.User)
	}).Return(nil)

	avatar := uploadFile(t, "me.png", pngBytes(t, 10, 10))

	_, err := uc.Register("alice", "secret", avatar)

	assert.NoError(t, err)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, store.saved[0], created.Avatar)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	stored := &entity.User{
		ID:       "user-123",
		Nickname: "alice",
		Password: hashPassword(t, "secret"),
	}
	mockRepo.On("GetByNickname", "alice").Return(stored, nil)

	user, token, err := uc.Login("alice", "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", user.ID)
	assert.Empty(t, user.Password)

	mockRepo.AssertExpectations(t)
}

func TestLogin_TokenCarriesUserClaims(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := jwt.NewService("test-secret")
	uc := NewAuthUseCase(mockRepo, jwtService, nil, &fakeStore{}, logger.New())

	stored := &entity.User{
		ID:       "user-123",
		Nickname: "alice",
		Password: hashPassword(t, "secret"),
	}
	mockRepo.On("GetByNickname", "alice").Return(stored, nil)

	_, token, err := uc.Login("alice", "secret")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Nickname)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	stored := &entity.User{
		ID:       "user-123",
		Nickname: "alice",
		Password: hashPassword(t, "secret"),
	}
	mockRepo.On("GetByNickname", "alice").Return(stored, nil)

	_, _, err := uc.Login("alice", "wrong")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownNickname(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	mockRepo.On("GetByNickname", "ghost").Return(nil, entity.ErrNotFound)

	_, _, err := uc.Login("ghost", "secret")

	// Same error as a wrong password so callers cannot probe for nicknames
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestGetUser_StripsPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	stored := &entity.User{ID: "user-123", Nickname: "alice", Password: "hash"}
	mockRepo.On("GetByID", "user-123").Return(stored, nil)

	user, err := uc.GetUser("user-123")

	assert.NoError(t, err)
	assert.Empty(t, user.Password)
}

func TestLogout_NoSessionStore(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestAuthUseCase(mockRepo)

	err := uc.Logout(context.Background(), "jti-123", time.Now().Add(time.Hour))

	assert.NoError(t, err)
}
