// Package models defines the persisted row types shared by repositories and
// services.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the users table. HashedPassword never leaves the service
// layer; API responses carry the JSON-serializable fields only.
type User struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsChirpyRed    bool      `json:"isChirpyRed"`
}
