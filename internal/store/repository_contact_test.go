package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agenturjaeger/immocrm/internal/logger"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func contactRow(id int64, lastName string) *sqlmock.Rows {
	values := make([]driver.Value, len(contactColumns))
	values[0] = id
	values[3] = lastName
	now := time.Now()
	values[len(values)-2] = now
	values[len(values)-1] = now
	return sqlmock.NewRows(contactColumns).AddRow(values...)
}

func TestContactInsert_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	fields := map[string]any{
		"lastName":    "Maier",
		"phoneNumber": "07331 123456",
	}

	// SetMap orders columns alphabetically: lastName before phoneNumber
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WithArgs("Maier", "07331 123456").
		WillReturnRows(contactRow(3, "Maier"))

	created, err := repo.Insert(context.Background(), fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
	if created.LastName == nil || *created.LastName != "Maier" {
		t.Errorf("expected last name Maier, got %v", created.LastName)
	}
}

func TestContactUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "contacts" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, map[string]any{"email": "x@example.com"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM "contacts"`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactDelete_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "contacts"`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
