package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a row in the refresh_tokens table. The opaque token string
// is the primary key; RevokedAt stays NULL until the token is revoked.
type RefreshToken struct {
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt sql.NullTime
}

// Valid reports whether the token can still mint access tokens at the given
// instant: not revoked and not past its expiry.
func (t RefreshToken) Valid(now time.Time) bool {
	return !t.RevokedAt.Valid && t.ExpiresAt.After(now)
}
