package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Email is the identity carried in tokens.
type User struct {
	ID           string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" bson:"password" gorm:"size:255;not null"` // Never expose in JSON
	ProfileImage *string   `json:"profileImage" bson:"profileImage,omitempty" gorm:"type:longtext"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate sets the ID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

// NewID returns a fresh identifier shared by every entity and store backend.
func NewID() string {
	return uuid.NewString()
}
