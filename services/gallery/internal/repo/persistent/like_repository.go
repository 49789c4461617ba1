package persistent

import (
	"muse-studio/services/gallery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Toggle(userID, postID string) (bool, int, error)
	IsLiked(userID, postID string) (bool, error)
	CountByPost(postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for (userID, postID) and adjusts the post's
// counter inside a single transaction. The unlike branch is driven by the
// delete's row count rather than a prior read, and the decrement is floored
// at zero in SQL, so concurrent toggles cannot duplicate rows or drive the
// counter negative. Returns the new state and counter value.
func (r *likeRepository) Toggle(userID, postID string) (bool, int, error) {
	var liked bool
	var likes int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).
				UpdateColumn("likes", clause.Expr{SQL: "GREATEST(likes - 1, 0)"}).Error; err != nil {
				return err
			}
		} else {
			like := &model.LikeModel{
				ID:     uuid.New().String(),
				UserID: userID,
				PostID: postID,
			}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked = true
			if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).
				UpdateColumn("likes", clause.Expr{SQL: "likes + ?", Vars: []interface{}{1}}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.PostModel{}).Select("likes").Where("id = ?", postID).Scan(&likes).Error
	})

	return liked, likes, err
}

func (r *likeRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
