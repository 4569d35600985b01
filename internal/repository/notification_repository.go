package repository

import (
	"context"

	"gorm.io/gorm"

	"declutter/internal/model"
)

// NotificationRepository defines notification persistence operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	// ListByRecipient returns the notifications addressed to email, newest
	// first, with the referenced post loaded when it still exists.
	ListByRecipient(ctx context.Context, email string) ([]model.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	// Omit the relation so a stale Post value is never upserted alongside.
	return translate(r.db.WithContext(ctx).Omit("Post").Create(notification).Error)
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, email string) ([]model.Notification, error) {
	notifications := []model.Notification{}
	if err := r.db.WithContext(ctx).Preload("Post").
		Where("to_email = ?", email).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, translate(err)
	}
	return notifications, nil
}
