package persistent

import (
	"muse-studio/services/gallery/internal/model"

	"gorm.io/gorm"
)

// ProjectRepository is the gallery's narrow view of project rows: publishing
// only needs existence and ownership.
type ProjectRepository interface {
	GetOwnerID(projectID string) (string, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetOwnerID(projectID string) (string, error) {
	var projectModel model.ProjectModel
	if err := r.db.Select("id", "user_id").Where("id = ?", projectID).First(&projectModel).Error; err != nil {
		return "", err
	}
	return projectModel.UserID, nil
}
