package posts

import (
	"context"
	"errors"
	"fmt"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = `id, photo_hash, title, description, place, author, width, height, created_at`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (` + postColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		post.ID, post.PhotoHash, post.Title, post.Description, post.Place,
		post.Author, post.Width, post.Height, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, username string) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
	          WHERE author = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, username)
}

func (r *PostgresRepository) CountByAuthor(ctx context.Context, username string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM posts WHERE author = $1`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListByPlace(ctx context.Context, place string) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE place = $1`
	return r.queryMany(ctx, query, place)
}

func (r *PostgresRepository) Random(ctx context.Context) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY random() LIMIT 1`
	return r.queryOne(ctx, query)
}

func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET title = $2, description = $3, place = $4
	          WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, post.ID, post.Title, post.Description, post.Place)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Post, error) {
	post := &models.Post{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&post.ID, &post.PhotoHash, &post.Title, &post.Description, &post.Place,
		&post.Author, &post.Width, &post.Height, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID, &post.PhotoHash, &post.Title, &post.Description, &post.Place,
			&post.Author, &post.Width, &post.Height, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
