package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chirpy-social/chirpy/internal/config"
	"github.com/chirpy-social/chirpy/internal/logging"
	"github.com/chirpy-social/chirpy/internal/repositories/repomanager"
	"github.com/chirpy-social/chirpy/internal/services"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// App bundles the configuration, the repository manager, and the HTTP server
// into one runnable unit with graceful shutdown.
type App struct {
	cfg    *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *Server
}

// NewApp opens the database, runs migrations, and wires services into the
// HTTP server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewZerologLogger(os.Stdout).With("app", "chirpy")

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessions := services.NewSessionService(repos.Users(), repos.RefreshTokens(), cfg)
	users := services.NewUserService(repos.Users())
	chirps := services.NewChirpService(repos.Chirps())

	return &App{
		cfg:    cfg,
		logger: logger,
		repos:  repos,
		server: NewServer(cfg, logger, sessions, users, chirps),
	}, nil
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// drains in-flight requests and closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", srv.Addr, "platform", app.cfg.Platform)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err.Error())
	}
	return app.repos.Close()
}
