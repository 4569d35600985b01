package repository

import (
	"context"

	"gorm.io/gorm"

	"declutter/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	// ListByEmail returns the posts owned by email, newest first.
	ListByEmail(ctx context.Context, email string) ([]model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post record.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

// FindByID finds a post by ID.
func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// ListByEmail lists the posts of one owner.
func (r *postRepository) ListByEmail(ctx context.Context, email string) ([]model.Post, error) {
	posts := []model.Post{}
	if err := r.db.WithContext(ctx).Where("email = ?", email).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// Delete removes a post. Comments and notifications referencing it are kept.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
