package persistent

import (
	"muse-studio/services/gallery/internal/entity"
	"muse-studio/services/gallery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	GetOwnerID(id string) (string, error)
	IncrementPlays(id string) error
	DeleteWithLikes(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) GetOwnerID(id string) (string, error) {
	var postModel model.PostModel
	if err := r.db.Select("id", "user_id").Where("id = ?", id).First(&postModel).Error; err != nil {
		return "", err
	}
	return postModel.UserID, nil
}

func (r *postRepository) IncrementPlays(id string) error {
	res := r.db.Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("plays", clause.Expr{SQL: "plays + ?", Vars: []interface{}{1}})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithLikes removes the post and all of its like rows in one
// transaction, so a failed delete never strands orphaned likes.
func (r *postRepository) DeleteWithLikes(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}
