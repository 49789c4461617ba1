package http

import (
	"errors"
	"net/http"

	"muse-studio/pkg/logger"
	"muse-studio/services/gallery/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryUseCase usecase.GalleryUseCase
	logger         *logger.Logger
}

func NewGalleryHandler(galleryUseCase usecase.GalleryUseCase, logger *logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryUseCase: galleryUseCase,
		logger:         logger,
	}
}

type PublishPostRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Thumbnail   string `json:"thumbnail"`
	MediaURL    string `json:"media_url"`
}

func (h *GalleryHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound),
		errors.Is(err, usecase.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Gallery request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListPosts godoc
// @Summary      List gallery posts
// @Description  Get all published posts, newest first. Public, no auth required.
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *GalleryHandler) ListPosts(c *gin.Context) {
	posts, err := h.galleryUseCase.ListPosts()
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost godoc
// @Summary      Get a post
// @Description  Get a single post by ID. Every read counts one play.
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *GalleryHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.galleryUseCase.GetPost(postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// PublishPost godoc
// @Summary      Publish a project
// @Description  Publish one of the authenticated user's projects to the public gallery
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PublishPostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts [post]
func (h *GalleryHandler) PublishPost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.galleryUseCase.PublishPost(userID, req.ProjectID, req.Title, req.Description, req.Thumbnail, req.MediaURL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Like the post if not yet liked by the caller, otherwise remove the like
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *GalleryHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	liked, likes, err := h.galleryUseCase.ToggleLike(userID, postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	message := "Post liked"
	if !liked {
		message = "Post unliked"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"liked":   liked,
		"likes":   likes,
	})
}

// IsLiked godoc
// @Summary      Check like state
// @Description  Report whether the authenticated user currently likes the post
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /posts/{id}/liked [get]
func (h *GalleryHandler) IsLiked(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	liked, err := h.galleryUseCase.IsLiked(userID, postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Remove a post from the gallery along with its likes (owner only)
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *GalleryHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.galleryUseCase.DeletePost(postID, userID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
