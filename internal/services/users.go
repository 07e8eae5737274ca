package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/auth"
	"github.com/chirpy-social/chirpy/internal/common"
	"github.com/chirpy-social/chirpy/internal/models"
	"github.com/chirpy-social/chirpy/internal/repositories/users"
)

// UserService handles account creation, the upgrade webhook's side effect,
// and the admin listing/reset operations.
type UserService struct {
	users users.Repository
}

// NewUserService constructs a UserService.
func NewUserService(u users.Repository) *UserService {
	return &UserService{users: u}
}

// CreateUser registers a new account. The returned user never carries the
// password hash.
func (s *UserService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Missing email!")
	}
	if password == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Missing password!")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}

	user, err := s.users.Create(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, apperr.New(apperr.KindBadRequest, "Email already taken")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return user, nil
}

// GetUser returns one account by ID, without the password hash.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return user, nil
}

// Upgrade marks a user as Chirpy Red. Called only from the webhook flow.
func (s *UserService) Upgrade(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Upgrade(ctx, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "User not found")
		}
		return apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return nil
}

// GetAllUsers lists every account, oldest first.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return all, nil
}

// DeleteAllUsers wipes the users table; chirps and refresh tokens cascade.
// The platform gate lives at the HTTP boundary, not here.
func (s *UserService) DeleteAllUsers(ctx context.Context) error {
	if err := s.users.DeleteAll(ctx); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return nil
}
