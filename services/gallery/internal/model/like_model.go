package model

import "time"

type LikeModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post"`
	PostID    string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
