package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"declutter/internal/cache"
	apperrors "declutter/internal/errors"
	"declutter/internal/repository"
)

const profileImageCacheTTL = 5 * time.Minute

// UserService exposes profile operations on the caller's own record.
type UserService interface {
	// GetProfileImage returns nil when the user never set an image.
	GetProfileImage(ctx context.Context, email string) (*string, error)
	SetProfileImage(ctx context.Context, email, image string) (string, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(email string) string {
	return fmt.Sprintf("profile_image:%s", email)
}

func (s *userService) GetProfileImage(ctx context.Context, email string) (*string, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(email)); data != nil {
		var cached *string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user.ProfileImage); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(email), payload, profileImageCacheTTL)
	}
	return user.ProfileImage, nil
}

func (s *userService) SetProfileImage(ctx context.Context, email, image string) (string, error) {
	if image == "" {
		return "", fmt.Errorf("%w: image is required", apperrors.ErrValidation)
	}

	user, err := s.repo.UpdateProfileImage(ctx, email, image)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("update profile image: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(email))
	if user.ProfileImage == nil {
		return image, nil
	}
	return *user.ProfileImage, nil
}
