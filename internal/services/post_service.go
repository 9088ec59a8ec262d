package services

import (
	"context"
	"time"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"
	"filmio-backend/internal/repositories/photos"
	"filmio-backend/internal/repositories/posts"

	"github.com/google/uuid"
)

// MaxPostsPerAuthor caps how many posts one account can hold. The check is
// read-then-insert, so it is a soft cap under concurrent creates.
const MaxPostsPerAuthor = 36

type PostService struct {
	posts  posts.Repository
	photos photos.Repository
}

func NewPostService(posts posts.Repository, photos photos.Repository) *PostService {
	return &PostService{posts: posts, photos: photos}
}

// CanModify reports whether user may change or delete post. Ownership is a
// plain author match; there are no roles.
func CanModify(user *models.User, post *models.Post) bool {
	return user != nil && post != nil && user.Username == post.Author
}

// Create stamps the author and server time, copies the photo's dimensions
// onto the post, and persists it. Fails when the author is at the post cap
// or the referenced photo does not exist.
func (s *PostService) Create(ctx context.Context, req models.PostRequest, author string) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count, err := s.posts.CountByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	if count >= MaxPostsPerAuthor {
		return nil, common.ErrQuotaExceeded
	}

	photo, err := s.photos.GetByHash(ctx, req.PhotoHash)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:          uuid.New().String(),
		PhotoHash:   req.PhotoHash,
		Title:       req.Title,
		Description: req.Description,
		Place:       req.Place,
		Author:      author,
		Width:       photo.Width,
		Height:      photo.Height,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) Random(ctx context.Context) (*models.Post, error) {
	return s.posts.Random(ctx)
}

func (s *PostService) ListByAuthor(ctx context.Context, username string) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, username)
}

func (s *PostService) CountByAuthor(ctx context.Context, username string) (int, error) {
	return s.posts.CountByAuthor(ctx, username)
}

func (s *PostService) ListByLocation(ctx context.Context, place string) ([]models.Post, error) {
	return s.posts.ListByPlace(ctx, place)
}

// Update rewrites title, description and place. The photo reference is
// locked after creation: a request carrying a different hash is rejected,
// an omitted hash is tolerated.
func (s *PostService) Update(ctx context.Context, id string, req models.PostRequest, requester *models.User) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(requester, post) {
		return nil, common.ErrForbidden
	}
	if req.PhotoHash != "" && req.PhotoHash != post.PhotoHash {
		return nil, common.ErrImmutableField
	}

	post.Title = req.Title
	post.Description = req.Description
	post.Place = req.Place
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and returns the deleted record.
func (s *PostService) Delete(ctx context.Context, id string, requester *models.User) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(requester, post) {
		return nil, common.ErrForbidden
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return nil, err
	}
	return post, nil
}
