// Package server exposes the Chirpy HTTP API: user accounts, login and
// session lifecycle, chirps, the payment-provider webhook, the admin surface,
// and the hit-counted static fileserver.
package server

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chirpy-social/chirpy/internal/config"
	"github.com/chirpy-social/chirpy/internal/logging"
	"github.com/chirpy-social/chirpy/internal/services"
)

// Server owns the route table and the per-process counters. Construct it with
// NewServer and mount Handler on an http.Server.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	sessions *services.SessionService
	users    *services.UserService
	chirps   *services.ChirpService

	// fileserverHits backs /admin/metrics; the prometheus counter feeds
	// /metrics. Both count the same thing but are reset independently.
	fileserverHits atomic.Int64
	hitsCounter    prometheus.Counter
	registry       *prometheus.Registry

	mux *http.ServeMux
}

// NewServer wires the services into the route table. Each Server carries its
// own prometheus registry so repeated construction never double-registers.
func NewServer(cfg *config.Config, logger logging.Logger, sessions *services.SessionService, users *services.UserService, chirps *services.ChirpService) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		users:    users,
		chirps:   chirps,
		hitsCounter: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "chirpy_fileserver_hits_total",
			Help: "Number of requests served by the /app fileserver.",
		}),
		registry: registry,
		mux:      http.NewServeMux(),
	}
	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	s.mux.HandleFunc("GET /api/healthz", s.handlerReadiness)

	s.mux.HandleFunc("POST /api/users", s.handlerCreateUser)
	s.mux.HandleFunc("PUT /api/users", s.handlerUpdateUser)
	s.mux.HandleFunc("GET /api/users/me", s.handlerGetCurrentUser)
	s.mux.HandleFunc("POST /api/login", s.handlerLogin)
	s.mux.HandleFunc("POST /api/refresh", s.handlerRefresh)
	s.mux.HandleFunc("POST /api/revoke", s.handlerRevoke)

	s.mux.HandleFunc("POST /api/chirps", s.handlerCreateChirp)
	s.mux.HandleFunc("GET /api/chirps", s.handlerGetChirps)
	s.mux.HandleFunc("GET /api/chirps/{chirpID}", s.handlerGetChirp)
	s.mux.HandleFunc("DELETE /api/chirps/{chirpID}", s.handlerDeleteChirp)

	s.mux.HandleFunc("POST /api/polka/webhooks", s.handlerPolkaWebhook)

	s.mux.HandleFunc("GET /admin/metrics", s.handlerAdminMetrics)
	s.mux.HandleFunc("POST /admin/reset", s.handlerAdminReset)
	s.mux.HandleFunc("GET /admin/users", s.handlerAdminUsers)

	s.mux.Handle("GET /app/", s.countFileserverHits(
		http.StripPrefix("/app/", http.FileServer(http.Dir(s.cfg.StaticDir)))))

	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// Handler returns the full middleware-wrapped route table.
func (s *Server) Handler() http.Handler {
	return s.logResponses(s.mux)
}
