// Package user implements the account repository using SQLite.
package user

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const table = "users"

var columns = []string{"user_id", "nickname", "email", "password_hash", "created_at"}

// Repo provides account persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new user repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           int64  `db:"user_id"`
	Nickname     string `db:"nickname"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
}

func (r row) toDomain() *domain.Account {
	return &domain.Account{
		ID:           r.ID,
		Nickname:     r.Nickname,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    sqlite.FromMillis(r.CreatedAt),
	}
}

// Create inserts a new account and returns it with its assigned id.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query, args, err := sqlite.Builder.
		Insert(table).
		Columns("nickname", "email", "password_hash", "created_at").
		Values(a.Nickname, a.Email, a.PasswordHash, sqlite.Millis(a.CreatedAt)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "user", a.Email)
	}
	return out.toDomain(), nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.getOne(ctx, sq.Eq{"user_id": id}, id)
}

// GetByEmail returns an account by its normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.Account, error) {
	query, args, err := sqlite.Builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "user", key)
	}
	return out.toDomain(), nil
}

// ExistsByEmail reports whether an account already uses email.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := sqlite.Builder.
		Select("COUNT(*)").From(table).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &n, query, args...); err != nil {
		return false, sqlite.MapError(err, "user", email)
	}
	return n > 0, nil
}

// UpdateNickname changes the nickname of an account.
func (r *Repo) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	query, args, err := sqlite.Builder.
		Update(table).Set("nickname", nickname).Where(sq.Eq{"user_id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, query, args, id)
}

// Delete removes the account row. Owned data is removed by the caller.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := sqlite.Builder.Delete(table).Where(sq.Eq{"user_id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, query, args, id)
}

func (r *Repo) execOne(ctx context.Context, query string, args []any, id int64) error {
	return sqlite.ExecAffecting(ctx, sqlite.QuerierFromCtx(ctx, r.db), "user", id, query, args...)
}
