package repository

import (
	"context"

	"gorm.io/gorm"

	"declutter/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID string) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	comments := []model.Comment{}
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).
		Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, translate(err)
	}
	return comments, nil
}
