// Package sqlite holds the shared plumbing of the local SQLite store:
// connection setup, migrations, the transaction manager and error mapping.
// Per-table repositories live in sub-packages.
package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/heartmarshall/mooddiary-backend/internal/config"
)

const driverName = "sqlite"

// Builder is the squirrel statement builder shared by all repositories.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Open opens (creating if needed) the database file described by cfg.
// Foreign keys, WAL journaling and the busy timeout are set per connection
// through DSN pragmas. Writes take the lock up front (BEGIN IMMEDIATE).
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	db, err := sqlx.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if !cfg.SkipMigrations {
		if err := Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

func dsn(cfg config.DatabaseConfig) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10)+")")
	if cfg.Path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
		q.Add("_pragma", "synchronous(NORMAL)")
	}
	q.Set("_txlock", "immediate")
	return "file:" + cfg.Path + "?" + q.Encode()
}
