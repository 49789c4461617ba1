package model

// ProjectModel is the gallery's read-only view of the projects table, used
// to verify existence and ownership when publishing.
type ProjectModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid;not null;index"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
