package users

import (
	"context"
	"sync"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used as a test double.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return common.ErrUserExists
	}
	r.users[user.Username] = *user
	return nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}
