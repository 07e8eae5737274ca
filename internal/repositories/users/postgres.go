package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/common"
	"github.com/chirpy-social/chirpy/internal/dbx"
	"github.com/chirpy-social/chirpy/internal/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	query := `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		RETURNING id, created_at, updated_at, email, is_chirpy_red
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email, hashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.IsChirpyRed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, created_at, updated_at, email, hashed_password, is_chirpy_red
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.HashedPassword, &user.IsChirpyRed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, created_at, updated_at, email, is_chirpy_red
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.IsChirpyRed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (*models.User, error) {
	query := `
		UPDATE users
		SET email = $2, hashed_password = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, created_at, updated_at, email, is_chirpy_red
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id, email, hashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.IsChirpyRed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Upgrade(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET is_chirpy_red = true, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, created_at, updated_at, email, is_chirpy_red
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.IsChirpyRed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
