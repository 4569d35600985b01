package model

import (
	"time"

	"gorm.io/gorm"
)

// NotificationTypeComment marks a notification raised by a comment on the recipient's post.
const NotificationTypeComment = "comment"

// Notification tells a user that something happened to one of their posts.
type Notification struct {
	ID        string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	ToEmail   string    `json:"toEmail" bson:"toEmail" gorm:"size:255;not null;index"`
	Type      string    `json:"type" bson:"type" gorm:"size:50;not null"`
	PostID    string    `json:"postId,omitempty" bson:"postId,omitempty" gorm:"type:char(36);index"`
	FromEmail string    `json:"fromEmail,omitempty" bson:"fromEmail,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`

	// Relations
	Post *Post `json:"post,omitempty" bson:"-" gorm:"foreignKey:PostID"`
}

// BeforeCreate sets the ID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = NewID()
	}
	return nil
}
