package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/apperr"
	"github.com/chirpy-social/chirpy/internal/common"
	"github.com/chirpy-social/chirpy/internal/models"
)

func TestCreateUser_Success(t *testing.T) {
	repo := &fakeUsersRepo{createOut: &models.User{ID: uuid.New(), Email: "a@b.com"}}
	s := NewUserService(repo)

	user, err := s.CreateUser(context.Background(), "a@b.com", "Secret123!")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.HashedPassword != "" {
		t.Fatalf("created user must not carry the password hash")
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	s := NewUserService(&fakeUsersRepo{})

	_, err := s.CreateUser(context.Background(), "", "pw")
	if apperr.KindOf(err) != apperr.KindBadRequest || apperr.MessageOf(err) != "Missing email!" {
		t.Fatalf("missing email: got %v", err)
	}

	_, err = s.CreateUser(context.Background(), "a@b.com", "")
	if apperr.KindOf(err) != apperr.KindBadRequest || apperr.MessageOf(err) != "Missing password!" {
		t.Fatalf("missing password: got %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := NewUserService(&fakeUsersRepo{createErr: common.ErrConflict})

	_, err := s.CreateUser(context.Background(), "a@b.com", "pw")
	if apperr.KindOf(err) != apperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
	if apperr.MessageOf(err) != "Email already taken" {
		t.Fatalf("unexpected message: %q", apperr.MessageOf(err))
	}
}

func TestGetUser(t *testing.T) {
	id := uuid.New()
	s := NewUserService(&fakeUsersRepo{getByIDOut: &models.User{ID: id, Email: "a@b.com"}})

	user, err := s.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := NewUserService(&fakeUsersRepo{getByIDErr: common.ErrNotFound})

	_, err := s.GetUser(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpgrade_UnknownUser(t *testing.T) {
	s := NewUserService(&fakeUsersRepo{upgradeErr: common.ErrNotFound})

	err := s.Upgrade(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpgrade_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(repo)

	id := uuid.New()
	if err := s.Upgrade(context.Background(), id); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}
	if repo.upgradedUserID != id {
		t.Fatalf("upgrade targeted %v, want %v", repo.upgradedUserID, id)
	}
}

func TestDeleteAllUsers(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(repo)

	if err := s.DeleteAllUsers(context.Background()); err != nil {
		t.Fatalf("DeleteAllUsers error: %v", err)
	}
	if !repo.deleteAllCalled {
		t.Fatalf("repository DeleteAll was not called")
	}
}
