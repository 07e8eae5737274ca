package server

import (
	"fmt"
	"net/http"

	"github.com/chirpy-social/chirpy/internal/apperr"
)

const adminMetricsTemplate = `<html>
    <body>
        <h1>Welcome, Chirpy Admin</h1>
        <p>Chirpy has been visited %d times!</p>
    </body>
</html>`

func (s *Server) handlerReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handlerAdminMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, adminMetricsTemplate, s.fileserverHits.Load())
}

// handlerAdminReset zeroes the hit counter and wipes all users (chirps and
// refresh tokens cascade). Only the dev platform may do this.
func (s *Server) handlerAdminReset(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Platform != "dev" {
		s.respondWithError(w, r, apperr.New(apperr.KindForbidden, "Forbidden. Wrong platform."))
		return
	}

	s.fileserverHits.Store(0)
	if err := s.users.DeleteAllUsers(r.Context()); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Count reset and users deleted"))
}

func (s *Server) handlerAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.GetAllUsers(r.Context())
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}
