package server

import (
	"encoding/json"
	"net/http"

	"github.com/chirpy-social/chirpy/internal/apperr"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondWithError is the single boundary translator: every error raised in a
// handler flows through here and becomes a status code plus a JSON error body.
// Internal failures and untagged errors never leak their detail to the client.
func (s *Server) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong on our end"

	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		status = http.StatusBadRequest
		message = apperr.MessageOf(err)
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
		message = apperr.MessageOf(err)
	case apperr.KindForbidden:
		status = http.StatusForbidden
		message = apperr.MessageOf(err)
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = apperr.MessageOf(err)
	}

	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err.Error())
	}

	respondWithJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads the request body into dst. A body that does not parse is a
// client error, never an internal one.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, "Invalid request", err)
	}
	return nil
}
