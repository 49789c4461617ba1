package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records one user's endorsement of one post. The unique index on
// (user_id, post_id) is the store-level backstop for the at-most-one-like
// invariant under concurrent toggles.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
