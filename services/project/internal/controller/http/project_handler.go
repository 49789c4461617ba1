package http

import (
	"errors"
	"net/http"

	"muse-studio/pkg/logger"
	"muse-studio/services/project/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUseCase usecase.ProjectUseCase
	logger         *logger.Logger
}

func NewProjectHandler(projectUseCase usecase.ProjectUseCase, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

type CreateProjectRequest struct {
	Type        string `json:"type" binding:"required,oneof=video song album-cover"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Data        string `json:"data" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Data        *string `json:"data"`
	Thumbnail   *string `json:"thumbnail"`
}

func (h *ProjectHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidType),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Project request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListProjects godoc
// @Summary      List own projects
// @Description  Get all projects owned by the authenticated user, most recently updated first
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.GetString("user_id")

	projects, err := h.projectUseCase.ListProjects(userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject godoc
// @Summary      Get a project
// @Description  Get a single project by ID (owner only)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.GetString("user_id")

	project, err := h.projectUseCase.GetProject(projectID, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Save a new creative project for the authenticated user
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProjectRequest true "Project data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUseCase.CreateProject(userID, req.Type, req.Title, req.Description, req.Data, req.Thumbnail)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Partially update a project. Omitted fields are left unchanged; an empty description or thumbnail clears the field.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body UpdateProjectRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUseCase.UpdateProject(projectID, userID, req.Title, req.Description, req.Data, req.Thumbnail)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Delete a project owned by the authenticated user. Published posts referencing the project are kept.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.projectUseCase.DeleteProject(projectID, userID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadAsset godoc
// @Summary      Upload an asset
// @Description  Upload a thumbnail or media file and get back its URL
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Asset file"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /uploads [post]
func (h *ProjectHandler) UploadAsset(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
		return
	}
	defer src.Close()

	url, err := h.projectUseCase.UploadAsset(userID, src, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
