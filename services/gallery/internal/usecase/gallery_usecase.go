package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"muse-studio/pkg/logger"
	"muse-studio/pkg/queue"
	"muse-studio/services/gallery/internal/entity"
	"muse-studio/services/gallery/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTitle       = errors.New("title must be between 1 and 200 characters")
	ErrInvalidDescription = errors.New("description must be at most 1000 characters")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

type GalleryUseCase interface {
	ListPosts() ([]*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	PublishPost(userID, projectID, title, description, thumbnail, mediaURL string) (*entity.Post, error)
	ToggleLike(userID, postID string) (bool, int, error)
	IsLiked(userID, postID string) (bool, error)
	GetLikeCount(postID string) (int64, error)
	DeletePost(postID, userID string) error
}

type galleryUseCase struct {
	postRepo    persistent.PostRepository
	likeRepo    persistent.LikeRepository
	projectRepo persistent.ProjectRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewGalleryUseCase(
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	projectRepo persistent.ProjectRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) GalleryUseCase {
	return &galleryUseCase{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		projectRepo: projectRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *galleryUseCase) ListPosts() ([]*entity.Post, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost counts a play on every read and returns the post with the
// incremented value. There is no per-viewer dedup: repeated reads from the
// same caller each count.
func (uc *galleryUseCase) GetPost(postID string) (*entity.Post, error) {
	if err := uc.postRepo.IncrementPlays(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to count play: %w", err)
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(context.Background(), playsKey(postID), post.Plays, 0)
	}

	return post, nil
}

func (uc *galleryUseCase) PublishPost(userID, projectID, title, description, thumbnail, mediaURL string) (*entity.Post, error) {
	if len(title) < 1 || len(title) > maxTitleLen {
		return nil, ErrInvalidTitle
	}
	if len(description) > maxDescriptionLen {
		return nil, ErrInvalidDescription
	}

	ownerID, err := uc.projectRepo.GetOwnerID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if ownerID != userID {
		return nil, ErrForbidden
	}

	post := &entity.Post{
		UserID:      userID,
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Thumbnail:   thumbnail,
		MediaURL:    mediaURL,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to publish project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishNotification(map[string]interface{}{
			"type":     "new_post",
			"user_id":  userID,
			"post_id":  post.ID,
			"priority": 1,
		})
	}

	return post, nil
}

// ToggleLike flips the requester's like on a post. Calling it twice in a row
// restores the original state.
func (uc *galleryUseCase) ToggleLike(userID, postID string) (bool, int, error) {
	ownerID, err := uc.postRepo.GetOwnerID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, fmt.Errorf("failed to get post: %w", err)
	}

	liked, likes, err := uc.likeRepo.Toggle(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to toggle like for post %s: %v", postID, err)
		return false, 0, fmt.Errorf("failed to toggle like: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(context.Background(), likesKey(postID), likes, 0)
	}

	if liked && ownerID != userID && uc.queueClient != nil {
		go uc.publishNotification(map[string]interface{}{
			"type":     "like",
			"user_id":  ownerID,
			"liker_id": userID,
			"post_id":  postID,
			"priority": 3,
		})
	}

	return liked, likes, nil
}

func (uc *galleryUseCase) IsLiked(userID, postID string) (bool, error) {
	return uc.likeRepo.IsLiked(userID, postID)
}

func (uc *galleryUseCase) GetLikeCount(postID string) (int64, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		countStr, err := uc.redisClient.Get(ctx, likesKey(postID)).Result()
		if err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	count, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, likesKey(postID), count, 0)
	}
	return count, nil
}

// DeletePost removes the post and cascades to its like rows. Unlike project
// deletion, unpublishing must not leave dangling likes behind.
func (uc *galleryUseCase) DeletePost(postID, userID string) error {
	ownerID, err := uc.postRepo.GetOwnerID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to get post: %w", err)
	}
	if ownerID != userID {
		return ErrForbidden
	}

	if err := uc.postRepo.DeleteWithLikes(postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Del(context.Background(), likesKey(postID), playsKey(postID))
	}

	return nil
}

func (uc *galleryUseCase) publishNotification(task map[string]interface{}) {
	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish %v task: %v", task["type"], err)
	}
}

func likesKey(postID string) string {
	return fmt.Sprintf("post:likes:%s", postID)
}

func playsKey(postID string) string {
	return fmt.Sprintf("post:plays:%s", postID)
}
