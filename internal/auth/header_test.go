package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerWith(value string) http.Header {
	h := http.Header{}
	if value != "" {
		h.Set("Authorization", value)
	}
	return h
}

func TestGetBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: ErrNoAuthHeader},
		{name: "wrong scheme", header: "ApiKey abc123", wantErr: ErrMalformedAuthHeader},
		{name: "lowercase scheme", header: "bearer abc123", wantErr: ErrMalformedAuthHeader},
		{name: "empty token", header: "Bearer   ", wantErr: ErrMalformedAuthHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrMalformedAuthHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrMalformedAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GetBearerToken(headerWith(tt.header))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetAPIKey(t *testing.T) {
	t.Parallel()

	got, err := GetAPIKey(headerWith("ApiKey deadbeef"))
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", got)

	_, err = GetAPIKey(headerWith("Bearer deadbeef"))
	assert.True(t, errors.Is(err, ErrMalformedAuthHeader))

	_, err = GetAPIKey(headerWith(""))
	assert.True(t, errors.Is(err, ErrNoAuthHeader))
}

func TestMakeRefreshToken_Is64HexChars(t *testing.T) {
	t.Parallel()

	tok, err := MakeRefreshToken()
	require.NoError(t, err)
	assert.Len(t, tok, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", tok)

	other, err := MakeRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
