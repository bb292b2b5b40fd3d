package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/metrics"
	"socialnet/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPostsLimit = 20
	MaxPostsLimit     = 100
)

// LikeAction is the outcome of a like toggle.
type LikeAction string

const (
	LikeActionLiked   LikeAction = "liked"
	LikeActionUnliked LikeAction = "unliked"
)

// ToggleResult reports what a toggle did and the post's counter afterwards.
type ToggleResult struct {
	Action     LikeAction
	LikesCount int64
}

// CreatePostInput holds the fields of a new post.
type CreatePostInput struct {
	UserID    uint
	Content   string
	PostType  string
	MediaURLs []string
}

// ListPostsFilter selects a page of posts, optionally by author.
type ListPostsFilter struct {
	UserID uint
	Limit  int
	Offset int
}

// PostService creates posts and keeps their like and comment counters.
type PostService struct {
	db      *gorm.DB
	retries int
}

// NewPostService creates a PostService. retries bounds how often a like toggle is
// re-run after a transient serialization failure or deadlock.
func NewPostService(db *gorm.DB, retries int) *PostService {
	return &PostService{db: db, retries: retries}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if in.UserID == 0 || content == "" {
		return nil, ValidationError("user_id and content are required")
	}

	post := models.Post{
		UserID:    in.UserID,
		Content:   content,
		PostType:  in.PostType,
		MediaURLs: in.MediaURLs,
	}
	if post.PostType == "" {
		post.PostType = models.PostTypeText
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, NotFoundError("User not found")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// ToggleLike likes postID for userID, or removes the like if it already exists.
//
// The post row is locked for the duration of the transaction, so toggles on the same
// post are serialized and likes_count moves by exactly one per committed change.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*ToggleResult, error) {
	if userID == 0 || postID == 0 {
		return nil, ValidationError("user_id and post_id are required")
	}

	var result ToggleResult
	err := database.Transaction(ctx, s.db, s.retries, func(tx *gorm.DB) error {
		result = ToggleResult{}

		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&post, postID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Post not found")
		}
		if err != nil {
			return fmt.Errorf("lock post: %w", err)
		}

		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return fmt.Errorf("delete like: %w", res.Error)
		}

		delta := 0
		if res.RowsAffected > 0 {
			result.Action = LikeActionUnliked
			delta = -1
		} else {
			res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{UserID: userID, PostID: postID})
			if res.Error != nil {
				if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
					return NotFoundError("User not found")
				}
				return fmt.Errorf("insert like: %w", res.Error)
			}
			result.Action = LikeActionLiked
			if res.RowsAffected > 0 {
				delta = 1
			}
		}

		if delta != 0 {
			err = tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error
			if err != nil {
				return fmt.Errorf("update likes_count: %w", err)
			}
		}

		return tx.Model(&models.Post{}).Where("id = ?", postID).Pluck("likes_count", &result.LikesCount).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.LikesToggled.WithLabelValues(string(result.Action)).Inc()
	return &result, nil
}

// AddComment bumps the post's comments_count. The comment text is validated but not
// stored; there is no comments table.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, content string) (int64, error) {
	if userID == 0 || postID == 0 || strings.TrimSpace(content) == "" {
		return 0, ValidationError("user_id, post_id and content are required")
	}

	var count int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1"))
		if res.Error != nil {
			return fmt.Errorf("update comments_count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return NotFoundError("Post not found")
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).Pluck("comments_count", &count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Repost publishes a copy of the original post's content, type and media as userID.
// Counters of the new post start at zero and the original is left untouched.
func (s *PostService) Repost(ctx context.Context, userID, originalPostID uint) (*models.Post, error) {
	if userID == 0 || originalPostID == 0 {
		return nil, ValidationError("user_id and post_id are required")
	}

	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var original models.Post
		err := tx.Select("id", "content", "post_type", "media_urls").First(&original, originalPostID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Post not found")
		}
		if err != nil {
			return fmt.Errorf("load original post: %w", err)
		}

		post = models.Post{
			UserID:    userID,
			Content:   original.Content,
			PostType:  original.PostType,
			MediaURLs: original.MediaURLs,
		}
		if post.MediaURLs == nil {
			post.MediaURLs = []string{}
		}
		if err := tx.Create(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return NotFoundError("User not found")
			}
			return fmt.Errorf("create repost: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns posts newest first with their authors loaded.
// likes_count is the stored counter maintained by ToggleLike.
func (s *PostService) ListPosts(ctx context.Context, f ListPostsFilter) ([]models.Post, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultPostsLimit
	}
	if f.Limit > MaxPostsLimit {
		f.Limit = MaxPostsLimit
	}
	if f.Offset < 0 {
		return nil, ValidationError("offset must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.Post{}).Preload("User")
	if f.UserID != 0 {
		query = query.Where("user_id = ?", f.UserID)
	}

	posts := []models.Post{}
	if err := query.Order("created_at DESC, id DESC").Limit(f.Limit).Offset(f.Offset).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
