// Package refreshtokens declares the repository contract for the
// refresh_tokens table.
package refreshtokens

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/models"
)

// Repository defines persistence operations for refresh tokens.
type Repository interface {
	// Insert stores a new non-revoked token expiring at expiresAt. A conflict
	// (token value collision, or an existing token for this user) is skipped
	// by the database and reported as (false, nil); the caller decides whether
	// to retry with a fresh token.
	Insert(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) (inserted bool, err error)

	// Find returns the full row for the token, revoked or not, with no
	// validity filtering. Absent tokens return common.ErrNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Revoke stamps revoked_at on a currently non-revoked row and returns the
	// timestamp. A missing or already-revoked token returns common.ErrNotFound;
	// the WHERE revoked_at IS NULL guard makes concurrent double-revocation
	// resolve to exactly one winner.
	Revoke(ctx context.Context, token string) (time.Time, error)
}
