package http

import (
	"net/http"

	"snapboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	authUseCase    usecase.AuthUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, authUseCase usecase.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		authUseCase:    authUseCase,
	}
}

type UpdateProfileRequest struct {
	Nickname string `form:"nickname" binding:"required,min=2,max=20"`
	Password string `form:"password"`
}

type ChangeNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// GetProfile godoc
// @Summary      Get current profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      401  {object}  map[string]string
// @Router       /edit_profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update nickname, and optionally password and avatar, in one call. An empty password keeps the current one; a missing avatar upload keeps the current image.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        nickname formData string true "New nickname (2-20 characters)"
// @Param        password formData string false "New password (empty keeps current)"
// @Param        avatar formData file false "New avatar image (jpg/jpeg/png)"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /edit_profile [post]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		avatarFile = nil
	}

	user, err := h.profileUseCase.UpdateProfile(userID, req.Nickname, req.Password, avatarFile)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangeNickname godoc
// @Summary      Change nickname
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangeNicknameRequest true "New nickname"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /change_nickname [post]
func (h *ProfileHandler) ChangeNickname(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangeNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileUseCase.ChangeNickname(userID, req.Nickname)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "New password"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /change_password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileUseCase.ChangePassword(userID, req.Password)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangeAvatar godoc
// @Summary      Change avatar
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "New avatar image (jpg/jpeg/png)"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /change_avatar [post]
func (h *ProfileHandler) ChangeAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	user, err := h.profileUseCase.ChangeAvatar(userID, avatarFile)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
