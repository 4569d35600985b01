package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "declutter/internal/errors"
	"declutter/internal/model"
	"declutter/internal/repository"
)

// usernameEmailDomain completes a bare username into the email it registered with.
const usernameEmailDomain = "@example.com"

// UsernameEmail derives the owner email for a public username.
func UsernameEmail(username string) string {
	return username + usernameEmailDomain
}

// PostInput carries the client supplied fields of a new post.
type PostInput struct {
	Name     string
	Image    string
	Reason   string
	Category string
}

// PostService handles post operations.
type PostService interface {
	Create(ctx context.Context, owner string, in PostInput) (*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	ListByEmail(ctx context.Context, email string) ([]model.Post, error)
	ListByUsername(ctx context.Context, username string) ([]model.Post, error)
	Delete(ctx context.Context, caller, id string) error
}

type postService struct {
	repo repository.PostRepository
	now  func() time.Time
}

// NewPostService creates a new post service.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo, now: time.Now}
}

// Create validates and stores a post owned by owner.
func (s *postService) Create(ctx context.Context, owner string, in PostInput) (*model.Post, error) {
	if in.Name == "" || in.Image == "" || in.Reason == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: name, image, reason and category are all required", apperrors.ErrValidation)
	}
	category, ok := model.ParseCategory(in.Category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, in.Category)
	}

	post := &model.Post{
		Name:      in.Name,
		Image:     in.Image,
		Reason:    in.Reason,
		Category:  category,
		Email:     owner,
		CreatedAt: s.now(),
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, model.ErrInvalidPost) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Get returns a single post.
func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// ListByEmail returns the posts owned by email, newest first.
func (s *postService) ListByEmail(ctx context.Context, email string) ([]model.Post, error) {
	posts, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListByUsername is ListByEmail for the email derived from username.
func (s *postService) ListByUsername(ctx context.Context, username string) ([]model.Post, error) {
	return s.ListByEmail(ctx, UsernameEmail(username))
}

// Delete removes a post the caller owns.
func (s *postService) Delete(ctx context.Context, caller, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.Email != caller {
		return fmt.Errorf("post %s: %w", id, apperrors.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
