package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapboard/internal/entity"
	"snapboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileUseCase is a mock implementation of ProfileUseCase
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) UpdateProfile(actorID, nickname, password string, avatarFile *multipart.FileHeader) (*entity.User, error) {
	args := m.Called(actorID, nickname, password, avatarFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockProfileUseCase) ChangeNickname(actorID, nickname string) (*entity.User, error) {
	args := m.Called(actorID, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockProfileUseCase) ChangePassword(actorID, password string) (*entity.User, error) {
	args := m.Called(actorID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockProfileUseCase) ChangeAvatar(actorID string, avatarFile *multipart.FileHeader) (*entity.User, error) {
	args := m.Called(actorID, avatarFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.ProfileUseCase = (*MockProfileUseCase)(nil)

func TestGetProfile_Success(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.GET("/edit_profile", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetProfile(c)
	})

	mockUser := &entity.User{ID: "user-123", Nickname: "alice", Avatar: entity.DefaultAvatar}
	mockAuth.On("GetUser", "user-123").Return(mockUser, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/edit_profile", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "alice", response["nickname"])

	mockAuth.AssertExpectations(t)
}

func TestUpdateProfile_Success(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/edit_profile", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.UpdateProfile(c)
	})

	mockUser := &entity.User{ID: "user-123", Nickname: "newname"}
	mockProfile.On("UpdateProfile", "user-123", "newname", "", (*multipart.FileHeader)(nil)).Return(mockUser, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("nickname", "newname")
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/edit_profile", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "newname", response["nickname"])

	mockProfile.AssertExpectations(t)
}

func TestChangeNickname_Success(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/change_nickname", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ChangeNickname(c)
	})

	mockUser := &entity.User{ID: "user-123", Nickname: "newname"}
	mockProfile.On("ChangeNickname", "user-123", "newname").Return(mockUser, nil)

	changeJSON := `{"nickname":"newname"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/change_nickname", bytes.NewBufferString(changeJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProfile.AssertExpectations(t)
}

func TestChangeNickname_Taken(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/change_nickname", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ChangeNickname(c)
	})

	mockProfile.On("ChangeNickname", "user-123", "taken").Return(nil, entity.ErrDuplicateNickname)

	changeJSON := `{"nickname":"taken"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/change_nickname", bytes.NewBufferString(changeJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockProfile.AssertExpectations(t)
}

func TestChangeNickname_TooLong(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/change_nickname", handler.ChangeNickname)

	changeJSON := `{"nickname":"this-nickname-is-way-too-long"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/change_nickname", bytes.NewBufferString(changeJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProfile.AssertNotCalled(t, "ChangeNickname")
}

func TestChangePassword_Success(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/change_password", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ChangePassword(c)
	})

	mockUser := &entity.User{ID: "user-123", Nickname: "alice"}
	mockProfile.On("ChangePassword", "user-123", "newsecret").Return(mockUser, nil)

	changeJSON := `{"password":"newsecret"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/change_password", bytes.NewBufferString(changeJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProfile.AssertExpectations(t)
}

func TestChangeAvatar_MissingFile(t *testing.T) {
	mockProfile := new(MockProfileUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewProfileHandler(mockProfile, mockAuth)

	router := setupTestRouter()
	router.POST("/change_avatar", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ChangeAvatar(c)
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/change_avatar", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProfile.AssertNotCalled(t, "ChangeAvatar")
}
