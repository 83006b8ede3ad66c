// Package badge implements the badge catalog and grant repository using SQLite.
package badge

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const (
	catalogTable = "badges"
	grantTable   = "user_badges"
)

var catalogColumns = []string{"badge_id", "name", "description", "rule_type", "rule_value"}

// The target keeps its own selection; the source's is dropped first so the
// single-selection index cannot reject a moved grant.
const (
	dropSourceSelectionSQL = `UPDATE user_badges SET is_selected = 0
WHERE owner_id = ? AND EXISTS (SELECT 1 FROM user_badges WHERE owner_id = ? AND is_selected = 1)`
	reassignSQL = `UPDATE OR IGNORE user_badges SET owner_id = ? WHERE owner_id = ?`
)

// Repo provides badge persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new badge repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// prefixed qualifies columns with alias and keeps the bare names in the result set.
func prefixed(alias string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, alias+"."+c+" AS "+c)
	}
	return out
}

func (r *Repo) q(ctx context.Context) sqlite.Querier {
	return sqlite.QuerierFromCtx(ctx, r.db)
}

type badgeRow struct {
	ID          int64  `db:"badge_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	RuleType    string `db:"rule_type"`
	RuleValue   int    `db:"rule_value"`
}

func (r badgeRow) toDomain() domain.Badge {
	return domain.Badge{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		RuleType:    domain.RuleType(r.RuleType),
		RuleValue:   r.RuleValue,
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// List returns the whole badge catalog ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Badge, error) {
	query, args, err := sqlite.Builder.
		Select(catalogColumns...).From(catalogTable).OrderBy("badge_id ASC").ToSql()
	if err != nil {
		return nil, err
	}

	var rows []badgeRow
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "badges", "catalog")
	}

	out := make([]domain.Badge, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Grants
// ---------------------------------------------------------------------------

// Grant records that owner earned badgeID. An existing grant is left untouched;
// the result reports whether a new row was written.
func (r *Repo) Grant(ctx context.Context, owner domain.OwnerID, badgeID int64, at time.Time) (bool, error) {
	query, args, err := sqlite.Builder.
		Insert(grantTable).
		Options("OR IGNORE").
		Columns("owner_id", "badge_id", "earned_at", "is_selected").
		Values(string(owner), badgeID, sqlite.Millis(at), 0).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlite.MapError(err, "badge", badgeID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, sqlite.MapError(err, "badge", badgeID)
	}
	return n > 0, nil
}

type statusRow struct {
	badgeRow
	EarnedAt   *int64 `db:"earned_at"`
	IsSelected *int   `db:"is_selected"`
}

// Statuses returns every catalog badge annotated with owner's grants.
func (r *Repo) Statuses(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error) {
	query, args, err := sqlite.Builder.
		Select(append(prefixed("b", catalogColumns), "g.earned_at AS earned_at", "g.is_selected AS is_selected")...).
		From(catalogTable + " AS b").
		LeftJoin(grantTable+" AS g ON g.badge_id = b.badge_id AND g.owner_id = ?", string(owner)).
		OrderBy("b.badge_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []statusRow
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "badges", owner)
	}

	out := make([]domain.BadgeStatus, 0, len(rows))
	for _, rw := range rows {
		st := domain.BadgeStatus{Badge: rw.badgeRow.toDomain()}
		if rw.EarnedAt != nil {
			at := sqlite.FromMillis(*rw.EarnedAt)
			st.IsEarned = true
			st.EarnedAt = &at
			st.IsSelected = rw.IsSelected != nil && sqlite.Bool(*rw.IsSelected)
		}
		out = append(out, st)
	}
	return out, nil
}

// Selected returns owner's selected badge, or domain.ErrNotFound when none is selected.
func (r *Repo) Selected(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error) {
	query, args, err := sqlite.Builder.
		Select(prefixed("b", catalogColumns)...).
		From(catalogTable + " AS b").
		Join(grantTable + " AS g ON g.badge_id = b.badge_id").
		Where(sq.Eq{"g.owner_id": string(owner), "g.is_selected": 1}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rw badgeRow
	if err := sqlx.GetContext(ctx, r.q(ctx), &rw, query, args...); err != nil {
		return nil, sqlite.MapError(err, "selected badge", owner)
	}
	b := rw.toDomain()
	return &b, nil
}

// ClearSelection unselects all of owner's grants.
func (r *Repo) ClearSelection(ctx context.Context, owner domain.OwnerID) error {
	query, args, err := sqlite.Builder.
		Update(grantTable).
		Set("is_selected", 0).
		Where(sq.Eq{"owner_id": string(owner), "is_selected": 1}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "badges", owner)
	}
	return nil
}

// Select marks owner's grant of badgeID as selected. A badge the owner has
// not earned yields domain.ErrNotFound. Callers clear the previous selection first.
func (r *Repo) Select(ctx context.Context, owner domain.OwnerID, badgeID int64) error {
	query, args, err := sqlite.Builder.
		Update(grantTable).
		Set("is_selected", 1).
		Where(sq.Eq{"owner_id": string(owner), "badge_id": badgeID}).
		ToSql()
	if err != nil {
		return err
	}
	return sqlite.ExecAffecting(ctx, r.q(ctx), "badge", badgeID, query, args...)
}

// ---------------------------------------------------------------------------
// Ownership
// ---------------------------------------------------------------------------

// ReassignOwner moves from's grants to to. Grants to already holds are kept
// as they are and from's duplicates are removed.
func (r *Repo) ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error) {
	q := r.q(ctx)

	if _, err := q.ExecContext(ctx, dropSourceSelectionSQL, string(from), string(to)); err != nil {
		return 0, sqlite.MapError(err, "badges", from)
	}

	res, err := q.ExecContext(ctx, reassignSQL, string(to), string(from))
	if err != nil {
		return 0, sqlite.MapError(err, "badges", from)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, "badges", from)
	}

	if _, err := r.DeleteByOwner(ctx, from); err != nil {
		return 0, err
	}
	return moved, nil
}

// DeleteByOwner removes every grant of owner.
func (r *Repo) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	query, args, err := sqlite.Builder.Delete(grantTable).Where(sq.Eq{"owner_id": string(owner)}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "badges", owner)
	}
	return res.RowsAffected()
}
