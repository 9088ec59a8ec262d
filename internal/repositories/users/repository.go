package users

import (
	"context"

	"filmio-backend/internal/models"
)

// Repository is the persistence contract for user records.
type Repository interface {
	// Create inserts a new user. Returns common.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *models.User) error
	// GetByUsername returns common.ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
