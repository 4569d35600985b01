package repository

import (
	"context"

	"gorm.io/gorm"

	"declutter/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateProfileImage stores image on the user identified by email and
	// returns the updated record, or ErrNotFound.
	UpdateProfileImage(ctx context.Context, email, image string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) UpdateProfileImage(ctx context.Context, email, image string) (*model.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("profile_image", image).Error; err != nil {
		return nil, translate(err)
	}
	user.ProfileImage = &image
	return user, nil
}
