package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "declutter/internal/errors"
	"declutter/internal/model"
	"declutter/internal/repository"
)

// CommentNotifier receives every stored comment.
type CommentNotifier interface {
	CommentAdded(postID, commenter string, at time.Time)
}

// CommentService handles comment operations.
type CommentService interface {
	List(ctx context.Context, postID string) ([]model.Comment, error)
	Create(ctx context.Context, author, postID, text string) (*model.Comment, error)
}

type commentService struct {
	repo     repository.CommentRepository
	notifier CommentNotifier
	now      func() time.Time
}

// NewCommentService creates a new comment service.
func NewCommentService(repo repository.CommentRepository, notifier CommentNotifier) CommentService {
	return &commentService{repo: repo, notifier: notifier, now: time.Now}
}

// List returns the comments of a post, oldest first.
func (s *commentService) List(ctx context.Context, postID string) ([]model.Comment, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create stores a comment and hands the owner notification to the notifier.
// The post is not required to exist.
func (s *commentService) Create(ctx context.Context, author, postID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", apperrors.ErrValidation)
	}

	comment := &model.Comment{
		PostID:    postID,
		Text:      text,
		Email:     author,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.notifier.CommentAdded(postID, author, comment.CreatedAt)
	return comment, nil
}
