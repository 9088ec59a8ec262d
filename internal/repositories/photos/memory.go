package photos

import (
	"context"
	"sync"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used as a test double.
type MemoryRepository struct {
	mu     sync.RWMutex
	photos map[string]models.Photo
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{photos: make(map[string]models.Photo)}
}

func (r *MemoryRepository) Create(_ context.Context, photo *models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.photos[photo.Hash]; ok {
		return nil
	}
	r.photos[photo.Hash] = *photo
	return nil
}

func (r *MemoryRepository) GetByHash(_ context.Context, hash string) (*models.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	photo, ok := r.photos[hash]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &photo, nil
}

// Len reports how many metadata records exist.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.photos)
}
