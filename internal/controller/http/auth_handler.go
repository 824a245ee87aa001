package http

import (
	"net/http"
	"time"

	"snapboard/internal/entity"
	"snapboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterRequest struct {
	Nickname string `form:"nickname" binding:"required,min=2,max=20"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Register with nickname and password, optionally uploading an avatar image
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        nickname formData string true "Nickname (2-20 characters)"
// @Param        password formData string true "Password"
// @Param        avatar formData file false "Avatar image (jpg/jpeg/png), resized to fit 125x125"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Avatar is optional; a missing file is not an error
	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		avatarFile = nil
	}

	user, err := h.authUseCase.Register(req.Nickname, req.Password, avatarFile)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with nickname and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.Login(req.Nickname, req.Password)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  End the current session; the token stops working immediately. Idempotent.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")

	exp, ok := expiresAt.(time.Time)
	if !ok {
		exp = time.Now()
	}

	if err := h.authUseCase.Logout(c.Request.Context(), tokenID, exp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
