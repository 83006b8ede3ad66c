// Package analysis implements the analysis cache repository using SQLite.
package analysis

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const table = "ai_analysis"

var columns = []string{
	"analysis_id", "entry_id", "summary", "trigger_pattern", "actions_json",
	"hashtags_json", "mission_summary", "full_text", "created_at",
}

// Repo provides the per-entry analysis cache. Rows are written once and never updated.
type Repo struct {
	db *sqlx.DB
}

// New creates a new analysis repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             int64  `db:"analysis_id"`
	EntryID        int64  `db:"entry_id"`
	Summary        string `db:"summary"`
	TriggerPattern string `db:"trigger_pattern"`
	ActionsJSON    string `db:"actions_json"`
	HashtagsJSON   string `db:"hashtags_json"`
	MissionSummary string `db:"mission_summary"`
	FullText       string `db:"full_text"`
	CreatedAt      int64  `db:"created_at"`
}

func (r row) toDomain() *domain.Analysis {
	return &domain.Analysis{
		ID:             r.ID,
		EntryID:        r.EntryID,
		Summary:        r.Summary,
		TriggerPattern: r.TriggerPattern,
		Actions:        sqlite.DecodeStrings(r.ActionsJSON),
		Hashtags:       sqlite.DecodeStrings(r.HashtagsJSON),
		MissionSummary: r.MissionSummary,
		FullText:       r.FullText,
		CreatedAt:      sqlite.FromMillis(r.CreatedAt),
	}
}

// GetByEntryID returns the cached analysis of an entry owned by owner.
// Analyses of other owners' entries are reported as not found.
func (r *Repo) GetByEntryID(ctx context.Context, owner domain.OwnerID, entryID int64) (*domain.Analysis, error) {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "a." + c + " AS " + c
	}

	query, args, err := sqlite.Builder.
		Select(cols...).
		From(table + " AS a").
		Join("entries AS e ON e.entry_id = a.entry_id").
		Where(sq.Eq{"a.entry_id": entryID, "e.owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "analysis", entryID)
	}
	return out.toDomain(), nil
}

// InsertIgnore stores a unless the entry already has an analysis.
// It reports whether a new row was written.
func (r *Repo) InsertIgnore(ctx context.Context, a *domain.Analysis) (bool, error) {
	query, args, err := sqlite.Builder.
		Insert(table).
		Options("OR IGNORE").
		Columns("entry_id", "summary", "trigger_pattern", "actions_json",
			"hashtags_json", "mission_summary", "full_text", "created_at").
		Values(a.EntryID, a.Summary, a.TriggerPattern, sqlite.EncodeStrings(a.Actions),
			sqlite.EncodeStrings(a.Hashtags), a.MissionSummary, a.FullText, sqlite.Millis(a.CreatedAt)).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlite.MapError(err, "analysis", a.EntryID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, sqlite.MapError(err, "analysis", a.EntryID)
	}
	return n > 0, nil
}

// DeleteByOwner removes the analyses of every entry owned by owner.
func (r *Repo) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	sub := sqlite.Builder.Select("entry_id").From("entries").Where(sq.Eq{"owner_id": string(owner)})
	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return 0, err
	}

	query, args, err := sqlite.Builder.
		Delete(table).
		Where("entry_id IN ("+subSQL+")", subArgs...).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "analysis", owner)
	}
	return res.RowsAffected()
}
