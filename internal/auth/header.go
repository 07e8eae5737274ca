package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// GetBearerToken extracts the access or refresh token from an
// "Authorization: Bearer <token>" header.
func GetBearerToken(headers http.Header) (string, error) {
	return schemeValue(headers, "Bearer")
}

// GetAPIKey extracts the shared key from an "Authorization: ApiKey <key>"
// header. Only the upgrade webhook uses this scheme.
func GetAPIKey(headers http.Header) (string, error) {
	return schemeValue(headers, "ApiKey")
}

func schemeValue(headers http.Header, scheme string) (string, error) {
	raw := headers.Get("Authorization")
	if raw == "" {
		return "", ErrNoAuthHeader
	}

	// Fields collapses runs of whitespace, so "Bearer   " yields a single
	// element and fails the length check below.
	parts := strings.Fields(raw)
	if len(parts) != 2 || parts[0] != scheme {
		return "", fmt.Errorf("%w: expected %q scheme", ErrMalformedAuthHeader, scheme)
	}
	return parts[1], nil
}
