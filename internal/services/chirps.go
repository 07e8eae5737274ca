package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/common"
	"github.com/chirpy-social/chirpy/internal/models"
	"github.com/chirpy-social/chirpy/internal/repositories/chirps"
)

// maxChirpLength is the longest body accepted, measured before moderation.
const maxChirpLength = 140

// ChirpService handles chirp validation, moderation, and persistence.
// Authorization decisions stay with the SessionService; handlers compose the
// two.
type ChirpService struct {
	chirps chirps.Repository
}

// NewChirpService constructs a ChirpService.
func NewChirpService(c chirps.Repository) *ChirpService {
	return &ChirpService{chirps: c}
}

// CreateChirp validates and moderates body, then stores it for userID.
func (s *ChirpService) CreateChirp(ctx context.Context, body string, userID uuid.UUID) (*models.Chirp, error) {
	if body == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Invalid request")
	}
	if len(body) > maxChirpLength {
		return nil, apperr.New(apperr.KindBadRequest, "Chirp is too long. Max length is 140")
	}

	chirp, err := s.chirps.Create(ctx, cleanChirp(body), userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return chirp, nil
}

// GetChirps lists chirps ordered by creation time, optionally filtered to one
// author. authorID == uuid.Nil means no filter.
func (s *ChirpService) GetChirps(ctx context.Context, authorID uuid.UUID, order chirps.SortOrder) ([]models.Chirp, error) {
	var (
		list []models.Chirp
		err  error
	)
	if authorID == uuid.Nil {
		list, err = s.chirps.GetAll(ctx, order)
	} else {
		list, err = s.chirps.GetByAuthor(ctx, authorID, order)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return list, nil
}

// GetChirp returns a single chirp by ID.
func (s *ChirpService) GetChirp(ctx context.Context, id uuid.UUID) (*models.Chirp, error) {
	chirp, err := s.chirps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Chirp not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return chirp, nil
}

// DeleteChirp removes a chirp. The caller must have already authorized
// ownership.
func (s *ChirpService) DeleteChirp(ctx context.Context, id uuid.UUID) error {
	if err := s.chirps.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "Chirp not found")
		}
		return apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return nil
}
