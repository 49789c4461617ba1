package entity

import "time"

type ProjectType string

const (
	ProjectTypeVideo      ProjectType = "video"
	ProjectTypeSong       ProjectType = "song"
	ProjectTypeAlbumCover ProjectType = "album-cover"
)

// Valid reports whether t is one of the three supported project types.
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeVideo, ProjectTypeSong, ProjectTypeAlbumCover:
		return true
	}
	return false
}

// Project is a user's saved creative work. Data carries the serialized
// editor state and is never interpreted by the backend.
type Project struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Type        ProjectType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Data        string      `json:"data"`
	Thumbnail   string      `json:"thumbnail"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
