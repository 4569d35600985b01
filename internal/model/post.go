package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MaxReasonLength is the longest reason a post may carry, counted in characters.
const MaxReasonLength = 30

// Category is the reason bucket a post is filed under.
type Category string

const (
	CategoryUnused Category = "unused"
	CategoryBored  Category = "bored"
	CategoryBroken Category = "broken"
)

// localized labels accepted from older clients.
var categoryLabels = map[string]Category{
	"使わん": CategoryUnused,
	"飽きた": CategoryBored,
	"壊れた": CategoryBroken,
}

// ErrInvalidPost is wrapped by every schema violation reported by Post.Validate.
var ErrInvalidPost = errors.New("invalid post")

// ParseCategory resolves a canonical value or a localized label.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.TrimSpace(s)); c {
	case CategoryUnused, CategoryBored, CategoryBroken:
		return c, true
	}
	c, ok := categoryLabels[strings.TrimSpace(s)]
	return c, ok
}

// Post is an item a user wants to get rid of.
type Post struct {
	ID        string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" bson:"name" gorm:"size:255;not null"`
	Image     string    `json:"image" bson:"image" gorm:"type:longtext;not null"`
	Reason    string    `json:"reason" bson:"reason" gorm:"size:120;not null"`
	Category  Category  `json:"category" bson:"category" gorm:"type:varchar(20);not null"`
	Email     string    `json:"email" bson:"email" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets the ID and enforces the schema before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return p.Validate()
}

// Validate checks the field constraints of a post.
func (p *Post) Validate() error {
	switch {
	case p.Name == "", p.Image == "", p.Reason == "", p.Category == "":
		return fmt.Errorf("%w: name, image, reason and category are required", ErrInvalidPost)
	case p.Email == "":
		return fmt.Errorf("%w: owner email is required", ErrInvalidPost)
	case utf8.RuneCountInString(p.Reason) > MaxReasonLength:
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidPost, MaxReasonLength)
	}
	switch p.Category {
	case CategoryUnused, CategoryBored, CategoryBroken:
		return nil
	}
	return fmt.Errorf("%w: unknown category %q", ErrInvalidPost, p.Category)
}
