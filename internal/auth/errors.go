package auth

import "errors"

// Sentinel errors for credential extraction and token validation. All of them
// collapse to an unauthorized response at the HTTP boundary, but stay
// distinguishable here for logging and tests.
var (
	// ErrNoAuthHeader means the Authorization header was absent.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrMalformedAuthHeader means the header did not match "<Scheme> <token>".
	ErrMalformedAuthHeader = errors.New("malformed authorization header")

	// ErrTokenExpired means the signature verified but the token is past exp.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignatureInvalid means the signature did not verify.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenNotYetValid means the token carries a future nbf claim.
	ErrTokenNotYetValid = errors.New("token not yet valid")
	// ErrTokenMalformed means the token parsed but lacks a usable subject,
	// or did not parse at all.
	ErrTokenMalformed = errors.New("malformed token")
)
