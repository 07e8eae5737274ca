package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Insert(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) (bool, error) {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, NULL)
		ON CONFLICT DO NOTHING
		RETURNING token
	`
	var returned string
	err := r.db.QueryRowContext(ctx, query, token, userID, expiresAt).Scan(&returned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT token, created_at, updated_at, user_id, expires_at, revoked_at
		FROM refresh_tokens
		WHERE token = $1
	`
	rt := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&rt.Token, &rt.CreatedAt, &rt.UpdatedAt, &rt.UserID, &rt.ExpiresAt, &rt.RevokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rt, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, token string) (time.Time, error) {
	// The revoked_at IS NULL guard is the only concurrency control the token
	// lifecycle needs: of two concurrent revokes, one updates the row and the
	// other sees no rows.
	query := `
		UPDATE refresh_tokens
		SET revoked_at = now(), updated_at = now()
		WHERE token = $1 AND revoked_at IS NULL
		RETURNING revoked_at
	`
	var revokedAt time.Time
	err := r.db.QueryRowContext(ctx, query, token).Scan(&revokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, common.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return revokedAt, nil
}
