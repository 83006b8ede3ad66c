// Package session implements the device session state store using SQLite.
// State is a handful of key/value rows, so queries are plain SQL constants.
package session

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
)

// Repo provides session state persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new session repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const getSQL = `SELECT value FROM session_state WHERE key = ?`

const setSQL = `
INSERT INTO session_state (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`

const deleteSQL = `DELETE FROM session_state WHERE key = ?`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Get returns the value stored under key, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &value, getSQL, key); err != nil {
		return "", sqlite.MapError(err, "session state", key)
	}
	return value, nil
}

// Set stores value under key.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, setSQL, key, value); err != nil {
		return sqlite.MapError(err, "session state", key)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, deleteSQL, key); err != nil {
		return sqlite.MapError(err, "session state", key)
	}
	return nil
}
