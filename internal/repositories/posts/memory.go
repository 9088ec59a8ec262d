package posts

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used as a test double.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]models.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: make(map[string]models.Post)}
}

func (r *MemoryRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = *post
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &post, nil
}

func (r *MemoryRepository) ListByAuthor(_ context.Context, username string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Post
	for _, post := range r.posts {
		if post.Author == username {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) CountByAuthor(_ context.Context, username string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, post := range r.posts {
		if post.Author == username {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) ListByPlace(_ context.Context, place string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Post
	for _, post := range r.posts {
		if post.Place == place {
			result = append(result, post)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Random(_ context.Context) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.posts) == 0 {
		return nil, common.ErrNotFound
	}
	n := rand.Intn(len(r.posts))
	for _, post := range r.posts {
		if n == 0 {
			return &post, nil
		}
		n--
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) Update(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[post.ID]
	if !ok {
		return common.ErrNotFound
	}
	stored.Title = post.Title
	stored.Description = post.Description
	stored.Place = post.Place
	r.posts[post.ID] = stored
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}
