package chirps

import (
	"context"
	"database/sql"
	"database/sql/driver"
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

func chirpRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "body", "user_id"})
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func TestCreate_ReturnsStoredChirp(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id, userID := uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+chirps\b.*RETURNING\b`).
		WithArgs("hello world", userID).
		WillReturnRows(chirpRows([]driver.Value{id, now, now, "hello world", userID}))

	chirp, err := repo.Create(context.Background(), "hello world", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chirp.ID != id || chirp.Body != "hello world" || chirp.UserID != userID {
		t.Fatalf("unexpected chirp: %+v", chirp)
	}
}

func TestGetAll_OrderAscByDefault(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*SELECT\s.+FROM\s+chirps\s+ORDER\s+BY\s+created_at\s+ASC\s*$`).
		WillReturnRows(chirpRows(
			[]driver.Value{uuid.New(), now.Add(-time.Hour), now, "first", uuid.New()},
			[]driver.Value{uuid.New(), now, now, "second", uuid.New()},
		))

	got, err := repo.GetAll(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Body != "first" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetAll_OrderDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)ORDER\s+BY\s+created_at\s+DESC\s*$`).
		WillReturnRows(chirpRows())

	if _, err := repo.GetAll(context.Background(), SortDesc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByAuthor_FiltersByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*SELECT\s.+FROM\s+chirps\s+WHERE\s+user_id\s*=\s*\$1\b`).
		WithArgs(userID).
		WillReturnRows(chirpRows([]driver.Value{uuid.New(), now, now, "mine", userID}))

	got, err := repo.GetByAuthor(context.Background(), userID, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != userID {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`(?s)^\s*SELECT\s.+FROM\s+chirps\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`^\s*DELETE\s+FROM\s+chirps\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}
