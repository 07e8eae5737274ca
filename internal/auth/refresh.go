package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// refreshTokenBytes is the entropy of a refresh token; hex encoding doubles
// it to a 64-character opaque string.
const refreshTokenBytes = 32

// MakeRefreshToken generates a new opaque refresh token. It carries no
// structure at all; validity lives entirely in the refresh_tokens table.
func MakeRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
