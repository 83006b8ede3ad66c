// Package digest implements the monthly summary cache repository using SQLite.
package digest

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const table = "monthly_summaries"

var columns = []string{
	"owner_id", "year_month", "dominant_mood", "one_line_summary",
	"detail_summary", "emotion_flow", "keywords_json", "updated_at",
}

const reassignSQL = `UPDATE OR IGNORE monthly_summaries SET owner_id = ? WHERE owner_id = ?`

// Repo provides monthly digest persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new digest repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) sqlite.Querier {
	return sqlite.QuerierFromCtx(ctx, r.db)
}

type row struct {
	OwnerID        string `db:"owner_id"`
	YearMonth      string `db:"year_month"`
	DominantMood   int    `db:"dominant_mood"`
	OneLineSummary string `db:"one_line_summary"`
	DetailSummary  string `db:"detail_summary"`
	EmotionFlow    string `db:"emotion_flow"`
	KeywordsJSON   string `db:"keywords_json"`
	UpdatedAt      int64  `db:"updated_at"`
}

func (r row) toDomain() domain.MonthlyDigest {
	return domain.MonthlyDigest{
		OwnerID:        domain.OwnerID(r.OwnerID),
		YearMonth:      r.YearMonth,
		DominantMood:   domain.MoodFromDB(r.DominantMood),
		OneLineSummary: r.OneLineSummary,
		DetailSummary:  r.DetailSummary,
		EmotionFlow:    r.EmotionFlow,
		Keywords:       sqlite.DecodeStrings(r.KeywordsJSON),
		UpdatedAt:      sqlite.FromMillis(r.UpdatedAt),
	}
}

// Get returns the owner's digest for ym (YYYY-MM).
func (r *Repo) Get(ctx context.Context, owner domain.OwnerID, ym string) (*domain.MonthlyDigest, error) {
	query, args, err := sqlite.Builder.
		Select(columns...).From(table).
		Where(sq.Eq{"owner_id": string(owner), "year_month": ym}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, r.q(ctx), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "digest", ym)
	}
	d := out.toDomain()
	return &d, nil
}

// Upsert stores d, replacing any digest of the same month.
func (r *Repo) Upsert(ctx context.Context, d *domain.MonthlyDigest) error {
	query, args, err := sqlite.Builder.
		Insert(table).
		Columns(columns...).
		Values(string(d.OwnerID), d.YearMonth, int(d.DominantMood), d.OneLineSummary,
			d.DetailSummary, d.EmotionFlow, sqlite.EncodeStrings(d.Keywords), sqlite.Millis(d.UpdatedAt)).
		Suffix(`ON CONFLICT (owner_id, year_month) DO UPDATE SET
	dominant_mood = excluded.dominant_mood,
	one_line_summary = excluded.one_line_summary,
	detail_summary = excluded.detail_summary,
	emotion_flow = excluded.emotion_flow,
	keywords_json = excluded.keywords_json,
	updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "digest", d.YearMonth)
	}
	return nil
}

// Year returns the owner's digests whose month falls in year, oldest first.
func (r *Repo) Year(ctx context.Context, owner domain.OwnerID, year int) ([]domain.MonthlyDigest, error) {
	query, args, err := sqlite.Builder.
		Select(columns...).From(table).
		Where(sq.Eq{"owner_id": string(owner)}).
		Where("substr(year_month, 1, 4) = printf('%04d', ?)", year).
		OrderBy("year_month ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "digests", year)
	}

	out := make([]domain.MonthlyDigest, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// ReassignOwner moves from's digests to to. Months to already has keep to's
// digest and from's duplicates are removed.
func (r *Repo) ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, reassignSQL, string(to), string(from))
	if err != nil {
		return 0, sqlite.MapError(err, "digests", from)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, "digests", from)
	}

	if _, err := r.DeleteByOwner(ctx, from); err != nil {
		return 0, err
	}
	return moved, nil
}

// DeleteByOwner removes every digest of owner.
func (r *Repo) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	query, args, err := sqlite.Builder.Delete(table).Where(sq.Eq{"owner_id": string(owner)}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "digests", owner)
	}
	return res.RowsAffected()
}
