package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	IsChirpyRed  bool      `json:"isChirpyRed"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

func (s *Server) handlerCreateUser(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	user, err := s.users.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

func (s *Server) handlerUpdateUser(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	user, err := s.sessions.UpdateProfile(r.Context(), token, req.Email, req.Password)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// handlerGetCurrentUser returns the profile of the authenticated user.
func (s *Server) handlerGetCurrentUser(w http.ResponseWriter, r *http.Request) {
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

	user, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (s *Server) handlerLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	res, err := s.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, loginResponse{
		ID:           res.User.ID,
		Email:        res.User.Email,
		IsChirpyRed:  res.User.IsChirpyRed,
		Token:        res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// handlerRefresh exchanges a valid refresh token for a new access token. The
// refresh token itself stays as-is; it is not rotated.
func (s *Server) handlerRefresh(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}

	accessToken, err := s.sessions.Refresh(r.Context(), token)
	if err != nil {
		s.respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, refreshResponse{Token: accessToken})
}

func (s *Server) handlerRevoke(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}

	if err := s.sessions.Revoke(r.Context(), token); err != nil {
		s.respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type webhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		UserID uuid.UUID `json:"userId"`
	} `json:"data"`
}

// handlerPolkaWebhook upgrades a user to Chirpy Red when the payment provider
// reports "user.upgraded". Any other event name is acknowledged and ignored.
func (s *Server) handlerPolkaWebhook(w http.ResponseWriter, r *http.Request) {
	key, err := auth.GetAPIKey(r.Header)
	if err != nil {
		s.respondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, "Missing or malformed authorization header", err))
		return
	}
	if err := s.sessions.AuthorizeWebhook(key); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	var req webhookRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, r, err)
		return
	}

	if req.Event != "user.upgraded" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := s.users.Upgrade(r.Context(), req.Data.UserID); err != nil {
		s.respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
