package http

import (
	"net/http"

	"snapboard/internal/usecase"
	"snapboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
	Tags    string `form:"tags"`
}

type EditPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Tags    string `json:"tags"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post with optional image and video attachments. Images are resized to fit 500x500; videos are stored unmodified. Attachments cannot be changed after creation.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        content formData string true "Post body"
// @Param        tags formData string false "Free-text tags"
// @Param        images formData file false "Image files (jpg/jpeg/png), multiple allowed"
// @Param        videos formData file false "Video files (mp4/mov), multiple allowed"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	imageFiles := form.File["images"]
	videoFiles := form.File["videos"]

	post, err := h.postUseCase.Create(userID, req.Title, req.Content, req.Tags, imageFiles, videoFiles)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create post: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /post/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.List()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  Case-insensitive substring match against title or tags. A missing or empty term yields an empty result list.
// @Tags         posts
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		term = c.PostForm("search")
	}

	posts, err := h.postUseCase.Search(term)
	if err != nil {
		h.logger.Error("Failed to search posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// GetPostForEdit godoc
// @Summary      Get a post for editing
// @Description  Returns the post so the editor can be prefilled. Author only.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /edit_post/{id} [get]
func (h *PostHandler) GetPostForEdit(c *gin.Context) {
	userID := c.GetString("user_id")

	post, err := h.postUseCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to edit this post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// EditPost godoc
// @Summary      Edit a post
// @Description  Replace title, content, and tags. Author only; all fields are required on every edit and the media list is immutable.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body EditPostRequest true "New post fields"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /edit_post/{id} [post]
func (h *PostHandler) EditPost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Edit(userID, c.Param("id"), req.Title, req.Content, req.Tags)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to edit post: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and all its media. Author only.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /delete_post/{id} [post]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.postUseCase.Delete(userID, c.Param("id")); err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to delete post: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// LikePost godoc
// @Summary      Like a post
// @Description  Increment the like counter. Repeats by the same actor are allowed.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /like/{id} [get]
func (h *PostHandler) LikePost(c *gin.Context) {
	likes, err := h.postUseCase.IncrementLikes(c.Param("id"))
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to like post: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ViewPost godoc
// @Summary      Count a view
// @Description  Increment the view counter. Repeats by the same actor are allowed.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /view/{id} [get]
func (h *PostHandler) ViewPost(c *gin.Context) {
	views, err := h.postUseCase.IncrementViews(c.Param("id"))
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to count view: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"views": views})
}
