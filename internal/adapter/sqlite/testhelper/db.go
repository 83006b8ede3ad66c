// Package testhelper provides SQLite fixtures for repository and service tests.
package testhelper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/config"
)

// SetupTestDB opens a fresh database file under t.TempDir(), applies the
// goose migrations and returns the handle. Every test gets its own file,
// so tests can run in parallel without sharing rows.
// The handle is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "diary.db"),
		MaxOpenConns: 1,
		BusyTimeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
