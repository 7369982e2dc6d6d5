package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"qna-board/internal/domain/entity"
	"qna-board/internal/infra/adapter/persistence/postgres"
)

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(int64(1), "alice", "alice@example.com", "$2a$12$hash", created)
	mock.ExpectQuery(regexp.QuoteMeta(`
SELECT id, username, email, password_hash, created_at
FROM users
WHERE username = $1
LIMIT 1`)).
		WithArgs("alice").
		WillReturnRows(rows)

	repo := postgres.NewUserRepo(db)
	u, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if u == nil || u.ID != 1 || u.Email != "alice@example.com" {
		t.Errorf("unexpected user: %#v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepo_GetByUsername_noRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	repo := postgres.NewUserRepo(db)
	u, err := repo.GetByUsername(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if u != nil {
		t.Errorf("want nil for a missing user, got %#v", u)
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`
INSERT INTO users (username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`)).
		WithArgs("alice", "alice@example.com", "$2a$12$hash", created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := postgres.NewUserRepo(db)
	u := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$12$hash", CreatedAt: created}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID != 3 {
		t.Errorf("ID = %d, want 3", u.ID)
	}
}

func TestUserRepo_Create_uniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := postgres.NewUserRepo(db)
	u := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h", CreatedAt: time.Now()}
	err = repo.Create(context.Background(), u)
	if !errors.Is(err, entity.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
}

func TestUserRepo_ExistsByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := postgres.NewUserRepo(db)
	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername err=%v", err)
	}
	if !exists {
		t.Errorf("exists = false, want true")
	}
}

func TestUserRepo_ExistsByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`)).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := postgres.NewUserRepo(db)
	exists, err := repo.ExistsByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail err=%v", err)
	}
	if exists {
		t.Errorf("exists = true, want false")
	}
}
