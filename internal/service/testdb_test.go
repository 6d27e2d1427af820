package service

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/repository"
)

var testSchema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		token TEXT
	)`,
	`CREATE TABLE bp_readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		systolic INTEGER NOT NULL,
		diastolic INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range testSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("creating test schema: %v", err)
		}
	}

	return db
}

func newTestServices(t *testing.T) (*AuthService, *ReadingService, *ExportService) {
	t.Helper()

	db := newTestDB(t)
	readingRepo := repository.NewReadingRepository(db)
	return NewAuthService(repository.NewUserRepository(db)),
		NewReadingService(readingRepo),
		NewExportService(readingRepo)
}
