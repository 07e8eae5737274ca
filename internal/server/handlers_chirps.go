package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/auth"
	"github.com/chirpy-social/chirpy/internal/repositories/chirps"
)

type createChirpRequest struct {
	Body string `json:"body"`
}

func (s *Server) handlerCreateChirp(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}
	userID, err := s.sessions.UserIDFromToken(token)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}

	var req createChirpRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	chirp, err := s.chirps.CreateChirp(r.Context(), req.Body, userID)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chirp)
}

// handlerGetChirps lists chirps, optionally filtered by ?authorId= and
// ordered by ?sort=asc|desc (asc default).
func (s *Server) handlerGetChirps(w http.ResponseWriter, r *http.Request) {
	authorID := uuid.Nil
	if raw := r.URL.Query().Get("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.respondWithError(w, r, apperr.New(apperr.KindBadRequest, "Invalid author ID"))
			return
		}
		authorID = id
	}

	order := chirps.SortAsc
	if r.URL.Query().Get("sort") == string(chirps.SortDesc) {
		order = chirps.SortDesc
	}

	list, err := s.chirps.GetChirps(r.Context(), authorID, order)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

func (s *Server) handlerGetChirp(w http.ResponseWriter, r *http.Request) {
	chirpID, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		s.respondWithError(w, r, apperr.New(apperr.KindBadRequest, "Invalid chirp ID"))
		return
	}

	chirp, err := s.chirps.GetChirp(r.Context(), chirpID)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chirp)
}

// handlerDeleteChirp removes a chirp after a strict ownership check: only the
// author may delete, regardless of any other standing.
func (s *Server) handlerDeleteChirp(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}

	chirpID, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		s.respondWithError(w, r, apperr.New(apperr.KindBadRequest, "Invalid chirp ID"))
		return
	}

	chirp, err := s.chirps.GetChirp(r.Context(), chirpID)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}

	if _, err := s.sessions.AuthorizeOwnership(token, chirp.UserID); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	if err := s.chirps.DeleteChirp(r.Context(), chirpID); err != nil {
		s.respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
