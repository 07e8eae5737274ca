// Package common holds the sentinel errors shared by the repository layer.
// Callers match them with errors.Is; the service layer translates them into
// the apperr taxonomy before they reach the HTTP boundary.
package common

import "errors"

var (
	// ErrNotFound means the queried row does not exist. For refresh-token
	// revocation it also covers already-revoked rows, which the conditional
	// update skips on purpose.
	ErrNotFound = errors.New("not found")

	// ErrConflict means an insert was skipped by ON CONFLICT DO NOTHING.
	ErrConflict = errors.New("conflict")
)
