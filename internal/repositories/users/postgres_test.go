package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/chirpy-social/chirpy/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRows(id uuid.UUID, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{"id", "created_at", "updated_at", "email", "is_chirpy_red"}).
		AddRow(id, now, now, email, false)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+users\b.*ON\s+CONFLICT\s+DO\s+NOTHING.*RETURNING\b`).
		WithArgs("a@b.com", sqlmock.AnyArg()).
		WillReturnRows(userRows(id, "a@b.com"))

	user, err := repo.Create(context.Background(), "a@b.com", "$argon2id$...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != id || user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.HashedPassword != "" {
		t.Fatalf("Create must not return the password hash")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+users\b`).
		WithArgs("a@b.com", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), "a@b.com", "h")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected common.ErrConflict, got %v", err)
	}
}

func TestGetByEmail_IncludesHash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*SELECT\s.+hashed_password.+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "created_at", "updated_at", "email", "hashed_password", "is_chirpy_red"}).
			AddRow(id, now, now, "a@b.com", "$argon2id$stored", false))

	user, err := repo.GetByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.HashedPassword != "$argon2id$stored" {
		t.Fatalf("hash missing from GetByEmail result")
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s.+FROM\s+users\b`).
		WithArgs("missing@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestUpdateCredentials_ReturnsUpdatedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`(?s)^\s*UPDATE\s+users\s+SET\s+email\s*=\s*\$2.*RETURNING\b`).
		WithArgs(id, "new@b.com", sqlmock.AnyArg()).
		WillReturnRows(userRows(id, "new@b.com"))

	user, err := repo.UpdateCredentials(context.Background(), id, "new@b.com", "newhash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@b.com" {
		t.Fatalf("email not updated: %+v", user)
	}
}

func TestUpgrade_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`(?s)^\s*UPDATE\s+users\s+SET\s+is_chirpy_red\s*=\s*true\b`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Upgrade(context.Background(), id)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^\s*DELETE\s+FROM\s+users\s*$`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
