package entity

import "time"

// Post is a published, publicly listed reference to a project. Likes and
// plays are denormalized counters; both are guaranteed non-negative.
type Post struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	MediaURL    string    `json:"media_url"`
	Likes       int       `json:"likes"`
	Plays       int       `json:"plays"`
	CreatedAt   time.Time `json:"created_at"`
}

// Like records a single user's endorsement of a single post. Its existence
// is the toggle state: at most one row per (user, post) pair.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
