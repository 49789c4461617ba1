package persistent

import (
	"muse-studio/services/project/internal/entity"
	"muse-studio/services/project/internal/model"
)

func ToProjectEntity(m *model.ProjectModel) *entity.Project {
	if m == nil {
		return nil
	}

	return &entity.Project{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.ProjectType(m.Type),
		Title:       m.Title,
		Description: m.Description,
		Data:        m.Data,
		Thumbnail:   m.Thumbnail,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToProjectModel(e *entity.Project) *model.ProjectModel {
	if e == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Type:        string(e.Type),
		Title:       e.Title,
		Description: e.Description,
		Data:        e.Data,
		Thumbnail:   e.Thumbnail,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
