// Package chirps declares the repository contract for the chirps table.
package chirps

import (
	"context"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/models"
)

// SortOrder controls listing order by creation time.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Repository defines persistence operations for chirps. Moderation happens
// before Create; bodies are stored as given.
type Repository interface {
	// Create inserts a chirp owned by userID and returns the stored row.
	Create(ctx context.Context, body string, userID uuid.UUID) (*models.Chirp, error)

	// GetAll lists every chirp ordered by creation time.
	GetAll(ctx context.Context, order SortOrder) ([]models.Chirp, error)

	// GetByAuthor lists one user's chirps ordered by creation time.
	GetByAuthor(ctx context.Context, userID uuid.UUID, order SortOrder) ([]models.Chirp, error)

	// GetByID returns a single chirp, or common.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chirp, error)

	// Delete removes a chirp, or returns common.ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
