package chirps

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

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, body string, userID uuid.UUID) (*models.Chirp, error) {
	query := `
		INSERT INTO chirps (body, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, body, user_id
	`
	chirp := &models.Chirp{}
	err := r.db.QueryRowContext(ctx, query, body, userID).
		Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt, &chirp.Body, &chirp.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return chirp, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context, order SortOrder) ([]models.Chirp, error) {
	query := `
		SELECT id, created_at, updated_at, body, user_id
		FROM chirps
		ORDER BY created_at ` + orderSQL(order)
	return r.list(ctx, query)
}

func (r *PostgresRepository) GetByAuthor(ctx context.Context, userID uuid.UUID, order SortOrder) ([]models.Chirp, error) {
	query := `
		SELECT id, created_at, updated_at, body, user_id
		FROM chirps
		WHERE user_id = $1
		ORDER BY created_at ` + orderSQL(order)
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chirp, error) {
	query := `
		SELECT id, created_at, updated_at, body, user_id
		FROM chirps
		WHERE id = $1
	`
	chirp := &models.Chirp{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt, &chirp.Body, &chirp.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return chirp, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chirps WHERE id = $1`, id)
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

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Chirp, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var chirps []models.Chirp
	for rows.Next() {
		var chirp models.Chirp
		if err := rows.Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt, &chirp.Body, &chirp.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		chirps = append(chirps, chirp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return chirps, nil
}

// orderSQL maps a SortOrder onto a SQL keyword; anything unrecognized falls
// back to ascending. Never interpolates caller input.
func orderSQL(order SortOrder) string {
	if order == SortDesc {
		return "DESC"
	}
	return "ASC"
}
