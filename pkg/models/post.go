package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a published, publicly listed reference to a Project. The likes and
// plays counters are denormalized; the likes table stays authoritative for
// who liked what.
type Post struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ProjectID   string    `gorm:"type:uuid;not null;index" json:"project_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	MediaURL    string    `json:"media_url"`
	Likes       int       `gorm:"default:0" json:"likes"`
	Plays       int       `gorm:"default:0" json:"plays"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
