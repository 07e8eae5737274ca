package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/chirpy-social/chirpy/internal/migrations"
	"github.com/chirpy-social/chirpy/internal/repositories/chirps"
	"github.com/chirpy-social/chirpy/internal/repositories/refreshtokens"
	"github.com/chirpy-social/chirpy/internal/repositories/users"
)

// PostgresRepositoryManager owns the *sql.DB and the repositories built on it.
type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	chirps        chirps.Repository
	refreshTokens refreshtokens.Repository
}

// NewPostgresRepositoryManager opens the database, runs pending migrations,
// and constructs the repositories.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         users.NewPostgresRepository(db),
		chirps:        chirps.NewPostgresRepository(db),
		refreshTokens: refreshtokens.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }

func (m *PostgresRepositoryManager) Chirps() chirps.Repository { return m.chirps }

func (m *PostgresRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }
