package photos

import (
	"context"
	"errors"
	"fmt"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := `INSERT INTO photos (hash, original_extension, width, height)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (hash) DO NOTHING`
	_, err := r.pool.Exec(ctx, query,
		photo.Hash, photo.OriginalExtension, photo.Width, photo.Height)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByHash(ctx context.Context, hash string) (*models.Photo, error) {
	query := `SELECT hash, original_extension, width, height
	          FROM photos WHERE hash = $1`
	photo := &models.Photo{}
	err := r.pool.QueryRow(ctx, query, hash).Scan(
		&photo.Hash, &photo.OriginalExtension, &photo.Width, &photo.Height)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return photo, nil
}
