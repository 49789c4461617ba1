package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectType string

const (
	ProjectTypeVideo      ProjectType = "video"
	ProjectTypeSong       ProjectType = "song"
	ProjectTypeAlbumCover ProjectType = "album-cover"
)

// Project is a user's saved creative work: a music-video configuration, a
// song structure, or an album-cover design. Private to its owner; the Data
// column carries the serialized editor payload and is opaque to the backend.
type Project struct {
	ID          string      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        ProjectType `gorm:"type:varchar(20);not null" json:"type"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `json:"description"`
	Data        string      `gorm:"not null" json:"data"`
	Thumbnail   string      `json:"thumbnail"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
