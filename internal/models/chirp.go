package models

import (
	"time"

	"github.com/google/uuid"
)

// Chirp is a row in the chirps table. Body is stored post-moderation.
type Chirp struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"userId"`
}
