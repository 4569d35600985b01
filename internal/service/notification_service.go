package service

import (
	"context"
	"fmt"
	"time"

	apperrors "declutter/internal/errors"
	"declutter/internal/model"
	"declutter/internal/repository"
)

// NotificationInput carries the client supplied fields of a notification.
type NotificationInput struct {
	ToEmail string
	Type    string
	PostID  string
}

// NotificationService handles notification operations.
type NotificationService interface {
	ListForRecipient(ctx context.Context, email string) ([]model.Notification, error)
	Create(ctx context.Context, from string, in NotificationInput) (*model.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
	now  func() time.Time
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo, now: time.Now}
}

func (s *notificationService) ListForRecipient(ctx context.Context, email string) ([]model.Notification, error) {
	notifications, err := s.repo.ListByRecipient(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) Create(ctx context.Context, from string, in NotificationInput) (*model.Notification, error) {
	if in.ToEmail == "" || in.Type == "" || in.PostID == "" {
		return nil, fmt.Errorf("%w: toEmail, type and postId are required", apperrors.ErrValidation)
	}

	notification := &model.Notification{
		ToEmail:   in.ToEmail,
		Type:      in.Type,
		PostID:    in.PostID,
		FromEmail: from,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return notification, nil
}
