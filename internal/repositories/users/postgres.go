package users

import (
	"context"
	"errors"
	"fmt"

	"filmio-backend/internal/common"
	"filmio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, name, email, password_hash, profile_photo)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		user.Username, user.Name, user.Email, user.PasswordHash, user.ProfilePhoto)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrUserExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT username, name, email, password_hash, profile_photo
	          FROM users WHERE username = $1`
	user := &models.User{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.Name, &user.Email, &user.PasswordHash, &user.ProfilePhoto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
