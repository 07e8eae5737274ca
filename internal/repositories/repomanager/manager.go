// Package repomanager wires the Postgres connection, the goose migrations,
// and the per-table repositories together behind one constructor.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/chirpy-social/chirpy/internal/repositories/chirps"
	"github.com/chirpy-social/chirpy/internal/repositories/refreshtokens"
	"github.com/chirpy-social/chirpy/internal/repositories/users"
)

// RepositoryManager hands out repositories bound to the shared connection.
type RepositoryManager interface {
	Users() users.Repository
	Chirps() chirps.Repository
	RefreshTokens() refreshtokens.Repository
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
}
