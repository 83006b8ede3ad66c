package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier is the common interface implemented by both *sqlx.DB and *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
}

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the database handle.
func QuerierFromCtx(ctx context.Context, db *sqlx.DB) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx)
	return ok
}

// ExecAffecting runs a write and reports domain.ErrNotFound when it touched no rows.
func ExecAffecting(ctx context.Context, q Querier, entity string, key any, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err, entity, key)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return MapError(err, entity, key)
	}
	if n == 0 {
		return MapError(sql.ErrNoRows, entity, key)
	}
	return nil
}
