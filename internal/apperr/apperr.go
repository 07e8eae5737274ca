// Package apperr defines the error taxonomy shared by services and the HTTP
// boundary. Errors carry an explicit Kind instead of relying on a type
// hierarchy; the boundary translator switches on the kind.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// KindUnknown is the zero value; treated as Internal by the boundary.
	KindUnknown Kind = iota
	// KindBadRequest marks malformed or missing client input.
	KindBadRequest
	// KindUnauthorized marks missing, invalid, expired or revoked credentials.
	KindUnauthorized
	// KindForbidden marks an authenticated but not permitted request.
	KindForbidden
	// KindNotFound marks an absent referenced resource.
	KindNotFound
	// KindInternal marks hashing/signing primitive or persistence failures.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a tagged error value: a kind, a client-facing message, and an
// optional wrapped cause kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error that keeps err as its cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err. Errors without an apperr.Error in their
// chain classify as KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the client-facing message of err, or "" when err carries
// no apperr.Error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
