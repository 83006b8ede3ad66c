// Package setting implements the per-owner key/value settings repository using SQLite.
package setting

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const table = "settings"

const reassignSQL = `UPDATE OR IGNORE settings SET owner_id = ? WHERE owner_id = ?`

// Repo provides settings persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new settings repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) sqlite.Querier {
	return sqlite.QuerierFromCtx(ctx, r.db)
}

// Get returns the value stored under key for owner.
func (r *Repo) Get(ctx context.Context, owner domain.OwnerID, key string) (string, error) {
	query, args, err := sqlite.Builder.
		Select("value").From(table).Where(sq.Eq{"owner_id": string(owner), "key": key}).ToSql()
	if err != nil {
		return "", err
	}

	var value string
	if err := sqlx.GetContext(ctx, r.q(ctx), &value, query, args...); err != nil {
		return "", sqlite.MapError(err, "setting", key)
	}
	return value, nil
}

// Upsert stores value under key, replacing any previous value.
func (r *Repo) Upsert(ctx context.Context, s domain.Setting) error {
	query, args, err := sqlite.Builder.
		Insert(table).
		Columns("owner_id", "key", "value").
		Values(string(s.OwnerID), s.Key, s.Value).
		Suffix("ON CONFLICT (owner_id, key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "setting", s.Key)
	}
	return nil
}

// InsertIfAbsent stores value under key only when owner has no value yet.
func (r *Repo) InsertIfAbsent(ctx context.Context, s domain.Setting) (bool, error) {
	query, args, err := sqlite.Builder.
		Insert(table).
		Options("OR IGNORE").
		Columns("owner_id", "key", "value").
		Values(string(s.OwnerID), s.Key, s.Value).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlite.MapError(err, "setting", s.Key)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, sqlite.MapError(err, "setting", s.Key)
	}
	return n > 0, nil
}

// Delete removes key for owner.
func (r *Repo) Delete(ctx context.Context, owner domain.OwnerID, key string) error {
	query, args, err := sqlite.Builder.
		Delete(table).Where(sq.Eq{"owner_id": string(owner), "key": key}).ToSql()
	if err != nil {
		return err
	}
	return sqlite.ExecAffecting(ctx, r.q(ctx), "setting", key, query, args...)
}

// ReassignOwner moves from's settings to to. Keys to already has keep to's
// value and from's duplicates are removed.
func (r *Repo) ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, reassignSQL, string(to), string(from))
	if err != nil {
		return 0, sqlite.MapError(err, "settings", from)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, "settings", from)
	}

	if _, err := r.DeleteByOwner(ctx, from); err != nil {
		return 0, err
	}
	return moved, nil
}

// DeleteByOwner removes every setting of owner.
func (r *Repo) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	query, args, err := sqlite.Builder.Delete(table).Where(sq.Eq{"owner_id": string(owner)}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "settings", owner)
	}
	return res.RowsAffected()
}
