package photos

import (
	"context"

	"filmio-backend/internal/models"
)

// Repository is the persistence contract for photo metadata.
type Repository interface {
	// Create inserts a metadata record. Inserting a hash that already
	// exists is a no-op: concurrent uploads of identical content may race
	// past the caller's existence check.
	Create(ctx context.Context, photo *models.Photo) error
	// GetByHash returns common.ErrNotFound for unknown hashes.
	GetByHash(ctx context.Context, hash string) (*models.Photo, error)
}
