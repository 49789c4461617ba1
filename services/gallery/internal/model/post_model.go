package model

import "time"

type PostModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	UserID      string `gorm:"type:uuid;not null;index"`
	ProjectID   string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Thumbnail   string
	MediaURL    string
	Likes       int `gorm:"default:0"`
	Plays       int `gorm:"default:0"`
	CreatedAt   time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
