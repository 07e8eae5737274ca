// Package services contains the business logic between the HTTP handlers and
// the repositories. This file implements the session orchestrator: login,
// access-token refresh, revocation, profile updates, and the authorization
// decisions derived from tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/auth"
	"github.com/chirpy-social/chirpy/internal/common"
	"github.com/chirpy-social/chirpy/internal/config"
	"github.com/chirpy-social/chirpy/internal/models"
	"github.com/chirpy-social/chirpy/internal/repositories/refreshtokens"
	"github.com/chirpy-social/chirpy/internal/repositories/users"
)

// loginFailedMsg is deliberately identical for unknown emails and wrong
// passwords so responses cannot be used to enumerate accounts.
const loginFailedMsg = "Incorrect email or password"

// refreshTokenIssueAttempts bounds the regenerate-on-conflict loop. A 64-hex
// collision is effectively impossible, so exhaustion means something else is
// wrong with the table.
const refreshTokenIssueAttempts = 5

// SessionService orchestrates authentication and session lifecycle.
type SessionService struct {
	users         users.Repository
	refreshTokens refreshtokens.Repository
	secret        []byte
	issuer        string
	polkaKey      string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewSessionService constructs a SessionService from repositories and config.
func NewSessionService(u users.Repository, rt refreshtokens.Repository, cfg *config.Config) *SessionService {
	return &SessionService{
		users:         u,
		refreshTokens: rt,
		secret:        []byte(cfg.Secret),
		issuer:        cfg.TokenIssuer,
		polkaKey:      cfg.PolkaKey,
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

// LoginResult bundles the authenticated user with a fresh token pair.
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// Login verifies the credentials and, on success, issues one access token and
// one persisted refresh token.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, loginFailedMsg)
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}

	if !auth.CheckPasswordHash(password, user.HashedPassword) {
		return nil, apperr.New(apperr.KindUnauthorized, loginFailedMsg)
	}

	accessToken, err := auth.MakeJWT(user.ID.String(), s.secret, s.issuer, s.accessTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// issueRefreshToken generates and persists an opaque refresh token. The
// database skips conflicting inserts, so generation retries with fresh random
// bytes, bounded rather than unbounded.
func (s *SessionService) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	expiresAt := time.Now().Add(s.refreshTTL)
	for range refreshTokenIssueAttempts {
		token, err := auth.MakeRefreshToken()
		if err != nil {
			return "", apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
		}
		inserted, err := s.refreshTokens.Insert(ctx, token, userID, expiresAt)
		if err != nil {
			return "", apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
		}
		if inserted {
			return token, nil
		}
	}
	return "", apperr.New(apperr.KindInternal, "Something went wrong on our end")
}

// Refresh exchanges a stored, still-valid refresh token for a new access
// token. The refresh token itself is neither rotated nor consumed.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	rt, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", apperr.New(apperr.KindUnauthorized, "Invalid refresh token")
		}
		return "", apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	if !rt.Valid(time.Now()) {
		return "", apperr.New(apperr.KindUnauthorized, "Invalid refresh token")
	}

	accessToken, err := auth.MakeJWT(rt.UserID.String(), s.secret, s.issuer, s.accessTTL)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return accessToken, nil
}

// Revoke marks a refresh token revoked. Revocation is one-way and single-use:
// an already-revoked or unknown token is an error, not a no-op.
func (s *SessionService) Revoke(ctx context.Context, refreshToken string) error {
	if _, err := s.refreshTokens.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return apperr.New(apperr.KindUnauthorized, "Invalid refresh token")
		}
		return apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return nil
}

// UpdateProfile replaces the authenticated user's email and password. A valid
// access token is the only credential required; the old password is not.
func (s *SessionService) UpdateProfile(ctx context.Context, accessToken, email, password string) (*models.User, error) {
	userID, err := s.UserIDFromToken(accessToken)
	if err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Email and password are required")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}

	user, err := s.users.UpdateCredentials(ctx, userID, email, hashed)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Something went wrong on our end", err)
	}
	return user, nil
}

// UserIDFromToken validates an access token and returns its subject. Every
// token failure is unauthorized, but the message names the reason: the client
// needs to know whether to refresh or to log in again.
func (s *SessionService) UserIDFromToken(accessToken string) (uuid.UUID, error) {
	subject, err := auth.ValidateJWT(accessToken, s.secret)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindUnauthorized, tokenFailureMessage(err), err)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindUnauthorized, "Invalid or expired token",
			fmt.Errorf("%w: subject is not a user id", auth.ErrTokenMalformed))
	}
	return userID, nil
}

// AuthorizeOwnership validates the access token and requires its subject to
// own the resource. There is no admin override.
func (s *SessionService) AuthorizeOwnership(accessToken string, ownerID uuid.UUID) (uuid.UUID, error) {
	userID, err := s.UserIDFromToken(accessToken)
	if err != nil {
		return uuid.Nil, err
	}
	if userID != ownerID {
		return uuid.Nil, apperr.New(apperr.KindForbidden, "You do not own this resource")
	}
	return userID, nil
}

func tokenFailureMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "Invalid token signature"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return "Token not yet valid"
	default:
		return "Invalid or expired token"
	}
}

// AuthorizeWebhook checks the ApiKey presented by the payment provider
// against the configured key.
func (s *SessionService) AuthorizeWebhook(apiKey string) error {
	if apiKey != s.polkaKey {
		return apperr.New(apperr.KindUnauthorized, "Invalid API key")
	}
	return nil
}
