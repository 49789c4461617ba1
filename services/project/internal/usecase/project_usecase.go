package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"muse-studio/pkg/logger"
	"muse-studio/pkg/s3"
	"muse-studio/services/project/internal/entity"
	"muse-studio/services/project/internal/repo/persistent"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidType        = errors.New("type must be one of: video, song, album-cover")
	ErrInvalidTitle       = errors.New("title must be between 1 and 200 characters")
	ErrInvalidDescription = errors.New("description must be at most 1000 characters")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

type ProjectUseCase interface {
	ListProjects(ownerID string) ([]*entity.Project, error)
	GetProject(projectID, requesterID string) (*entity.Project, error)
	CreateProject(ownerID string, projectType, title, description, data, thumbnail string) (*entity.Project, error)
	UpdateProject(projectID, requesterID string, title, description, data, thumbnail *string) (*entity.Project, error)
	DeleteProject(projectID, requesterID string) error
	UploadAsset(ownerID string, file io.Reader, filename, contentType string) (string, error)
}

type projectUseCase struct {
	projectRepo persistent.ProjectRepository
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewProjectUseCase(projectRepo persistent.ProjectRepository, s3Client *s3.Client, logger *logger.Logger) ProjectUseCase {
	return &projectUseCase{
		projectRepo: projectRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *projectUseCase) ListProjects(ownerID string) ([]*entity.Project, error) {
	projects, err := uc.projectRepo.ListByOwner(ownerID)
	if err != nil {
		uc.logger.Error("Failed to list projects for user %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (uc *projectUseCase) GetProject(projectID, requesterID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.UserID != requesterID {
		return nil, ErrForbidden
	}

	return project, nil
}

func (uc *projectUseCase) CreateProject(ownerID string, projectType, title, description, data, thumbnail string) (*entity.Project, error) {
	if !entity.ProjectType(projectType).Valid() {
		return nil, ErrInvalidType
	}
	if len(title) < 1 || len(title) > maxTitleLen {
		return nil, ErrInvalidTitle
	}
	if len(description) > maxDescriptionLen {
		return nil, ErrInvalidDescription
	}

	project := &entity.Project{
		UserID:      ownerID,
		Type:        entity.ProjectType(projectType),
		Title:       title,
		Description: description,
		Data:        data,
		Thumbnail:   thumbnail,
	}

	if err := uc.projectRepo.Create(project); err != nil {
		uc.logger.Error("Failed to create project for user %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject applies a partial update. Nil fields are left unchanged; an
// explicit empty string clears description and thumbnail. A non-nil title
// must still satisfy the length bounds.
func (uc *projectUseCase) UpdateProject(projectID, requesterID string, title, description, data, thumbnail *string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.UserID != requesterID {
		return nil, ErrForbidden
	}

	if title != nil {
		if len(*title) < 1 || len(*title) > maxTitleLen {
			return nil, ErrInvalidTitle
		}
		project.Title = *title
	}
	if description != nil {
		if len(*description) > maxDescriptionLen {
			return nil, ErrInvalidDescription
		}
		project.Description = *description
	}
	if data != nil {
		project.Data = *data
	}
	if thumbnail != nil {
		project.Thumbnail = *thumbnail
	}

	if err := uc.projectRepo.Update(project); err != nil {
		uc.logger.Error("Failed to update project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	// Return the row as the store now holds it
	updated, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return updated, nil
}

// DeleteProject removes the project row only. Posts published from it are
// kept so the gallery continues to serve published work after the source
// project is gone.
func (uc *projectUseCase) DeleteProject(projectID, requesterID string) error {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.UserID != requesterID {
		return ErrForbidden
	}

	if err := uc.projectRepo.Delete(projectID); err != nil {
		uc.logger.Error("Failed to delete project %s: %v", projectID, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func (uc *projectUseCase) UploadAsset(ownerID string, file io.Reader, filename, contentType string) (string, error) {
	fileKey := fmt.Sprintf("assets/%s/%s%s", ownerID, uuid.New().String(), filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := uc.s3Client.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload asset for user %s: %v", ownerID, err)
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}

	return url, nil
}
