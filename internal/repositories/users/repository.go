// Package users declares the repository contract for the users table.
package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/models"
)

// Repository defines persistence operations for user accounts. The hashed
// password is written on create/update but only read back by GetByEmail for
// login verification.
type Repository interface {
	// Create inserts a new user. A duplicate email returns common.ErrConflict.
	Create(ctx context.Context, email, hashedPassword string) (*models.User, error)

	// GetByEmail returns the user including the stored password hash, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user without the password hash, or common.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpdateCredentials replaces the user's email and password hash and
	// returns the updated row, or common.ErrNotFound.
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (*models.User, error)

	// Upgrade marks the user as Chirpy Red, or common.ErrNotFound.
	Upgrade(ctx context.Context, id uuid.UUID) error

	// GetAll lists every user, oldest first.
	GetAll(ctx context.Context) ([]models.User, error)

	// DeleteAll removes every user; chirps and refresh tokens go with them
	// via ON DELETE CASCADE.
	DeleteAll(ctx context.Context) error
}
