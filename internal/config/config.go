// Package config loads runtime settings for the Chirpy server from the
// environment, with an optional .env file overlay for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for the server.
//
// SECRET signs access tokens (HS256); POLKA_KEY authenticates the payment
// provider webhook. Neither has a usable default.
type Config struct {
	// Port the HTTP server binds to.
	Port int `env:"PORT" envDefault:"8080"`

	// Platform gates destructive admin endpoints; only "dev" may reset state.
	Platform string `env:"PLATFORM" envDefault:"production"`

	// DatabaseURL is the PostgreSQL DSN (pgx).
	DatabaseURL string `env:"DB_URL,required,notEmpty"`

	// Secret is the HMAC key for signing access tokens.
	Secret string `env:"SECRET,required,notEmpty"`

	// PolkaKey is the shared ApiKey expected on upgrade webhooks.
	PolkaKey string `env:"POLKA_KEY,required,notEmpty"`

	// StaticDir is the directory served under /app.
	StaticDir string `env:"STATIC_DIR" envDefault:"./app"`

	// TokenIssuer is the iss claim stamped into access tokens.
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"chirpy"`

	// AccessTokenTTL is the access token lifetime.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`

	// RefreshTokenTTL is the refresh token lifetime.
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"1440h"`
}

// Load reads .env if present, then parses the environment into a Config.
// Missing required values are a startup error, not a runtime one.
func Load() (*Config, error) {
	// Ignore a missing .env; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
