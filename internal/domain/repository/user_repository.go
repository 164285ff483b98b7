package repository

import (
	"context"

	"allserve/internal/domain/entity"
)

// UserRepository defines the interface for user profile persistence.
type UserRepository interface {
	// FindUserByID retrieves a profile by uid. Returns ErrNotFound when missing.
	FindUserByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// ListUsers returns every profile, or only profiles with the given role when role is non-nil.
	ListUsers(ctx context.Context, role *entity.Role) ([]*entity.UserProfile, error)

	// RemoveDeviceTokens removes each given token from every profile that lists it.
	// Returns the number of profiles updated. Partial failure is possible.
	RemoveDeviceTokens(ctx context.Context, tokens []string) (int, error)
}
