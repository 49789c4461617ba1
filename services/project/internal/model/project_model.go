package model

import "time"

type ProjectModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	UserID      string `gorm:"type:uuid;not null;index"`
	Type        string `gorm:"type:varchar(20);not null"`
	Title       string `gorm:"not null"`
	Description string
	Data        string `gorm:"not null"`
	Thumbnail   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string {
	return "projects"
}
