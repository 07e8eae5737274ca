// Package auth implements the credential primitives of the server: password
// hashing and verification, access-token signing and validation, refresh-token
// generation, and Authorization header parsing. Nothing in this package talks
// to storage.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MakeJWT signs an HS256 access token for userID with the given issuer and
// lifetime. The token is self-contained; validity is derived purely from the
// signature and timestamps, never from storage.
func MakeJWT(userID string, secret []byte, issuer string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateJWT verifies the signature and timestamps of tokenString and returns
// the subject user ID. Failures map onto the package sentinels: ErrTokenExpired,
// ErrTokenSignatureInvalid, ErrTokenNotYetValid, ErrTokenMalformed.
func ValidateJWT(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			// Keep the library's reason so signature mismatches stay
			// distinguishable from expiry in logs.
			return "", fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return "", ErrTokenNotYetValid
		default:
			return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
