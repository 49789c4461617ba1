package persistent

import (
	"muse-studio/services/gallery/internal/entity"
	"muse-studio/services/gallery/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		Thumbnail:   m.Thumbnail,
		MediaURL:    m.MediaURL,
		Likes:       m.Likes,
		Plays:       m.Plays,
		CreatedAt:   m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		UserID:      e.UserID,
		ProjectID:   e.ProjectID,
		Title:       e.Title,
		Description: e.Description,
		Thumbnail:   e.Thumbnail,
		MediaURL:    e.MediaURL,
		Likes:       e.Likes,
		Plays:       e.Plays,
		CreatedAt:   e.CreatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}
