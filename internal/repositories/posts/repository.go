package posts

import (
	"context"

	"filmio-backend/internal/models"
)

// Repository is the persistence contract for posts.
type Repository interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByID returns common.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// ListByAuthor returns the author's posts, newest first.
	ListByAuthor(ctx context.Context, username string) ([]models.Post, error)
	CountByAuthor(ctx context.Context, username string) (int, error)
	ListByPlace(ctx context.Context, place string) ([]models.Post, error)
	// Random samples one post uniformly; common.ErrNotFound when empty.
	Random(ctx context.Context) (*models.Post, error)
	// Update rewrites the mutable text fields of an existing post.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}
