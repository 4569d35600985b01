package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a message left on a post. The post reference is not enforced
// after creation; deleting a post leaves its comments behind.
type Comment struct {
	ID        string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	PostID    string    `json:"postId" bson:"postId" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" bson:"text" gorm:"type:text;not null"`
	Email     string    `json:"email" bson:"email" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets the ID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
