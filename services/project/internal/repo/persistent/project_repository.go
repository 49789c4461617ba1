package persistent

import (
	"muse-studio/services/project/internal/entity"
	"muse-studio/services/project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByOwner(ownerID string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *entity.Project) error {
	projectModel := ToProjectModel(project)
	if projectModel.ID == "" {
		projectModel.ID = uuid.New().String()
	}
	if err := r.db.Create(projectModel).Error; err != nil {
		return err
	}
	*project = *ToProjectEntity(projectModel)
	return nil
}

func (r *projectRepository) GetByID(id string) (*entity.Project, error) {
	var projectModel model.ProjectModel
	if err := r.db.Where("id = ?", id).First(&projectModel).Error; err != nil {
		return nil, err
	}
	return ToProjectEntity(&projectModel), nil
}

func (r *projectRepository) ListByOwner(ownerID string) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	if err := r.db.Where("user_id = ?", ownerID).Order("updated_at DESC").Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = ToProjectEntity(&projectModels[i])
	}
	return projects, nil
}

func (r *projectRepository) Update(project *entity.Project) error {
	projectModel := ToProjectModel(project)
	if err := r.db.Save(projectModel).Error; err != nil {
		return err
	}
	*project = *ToProjectEntity(projectModel)
	return nil
}

func (r *projectRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ProjectModel{}).Error
}
