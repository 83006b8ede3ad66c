// Package entry implements the diary entry repository using SQLite.
package entry

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

const table = "entries"

var columns = []string{
	"entry_id", "owner_id", "date_ymd", "title", "content", "mood", "tags_json",
	"is_favorite", "is_temporary", "created_at", "updated_at",
}

const upsertSuffix = `ON CONFLICT (owner_id, date_ymd) DO UPDATE SET
	title = excluded.title,
	content = excluded.content,
	mood = excluded.mood,
	tags_json = excluded.tags_json,
	is_temporary = excluded.is_temporary,
	updated_at = excluded.updated_at
RETURNING `

// Rows whose (to, date_ymd) already exists are left with the old owner.
const reassignSQL = `UPDATE OR IGNORE entries SET owner_id = ? WHERE owner_id = ?`

// Repo provides entry persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new entry repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64  `db:"entry_id"`
	OwnerID     string `db:"owner_id"`
	DateYmd     string `db:"date_ymd"`
	Title       string `db:"title"`
	Content     string `db:"content"`
	Mood        int    `db:"mood"`
	TagsJSON    string `db:"tags_json"`
	IsFavorite  int    `db:"is_favorite"`
	IsTemporary int    `db:"is_temporary"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

func (r row) toDomain() domain.Entry {
	return domain.Entry{
		ID:          r.ID,
		OwnerID:     domain.OwnerID(r.OwnerID),
		DateYmd:     r.DateYmd,
		Title:       r.Title,
		Content:     r.Content,
		Mood:        domain.MoodFromDB(r.Mood),
		Tags:        sqlite.DecodeStrings(r.TagsJSON),
		IsFavorite:  sqlite.Bool(r.IsFavorite),
		IsTemporary: sqlite.Bool(r.IsTemporary),
		CreatedAt:   sqlite.FromMillis(r.CreatedAt),
		UpdatedAt:   sqlite.FromMillis(r.UpdatedAt),
	}
}

func (r *Repo) q(ctx context.Context) sqlite.Querier {
	return sqlite.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Single entry operations
// ---------------------------------------------------------------------------

// Upsert inserts e or, when the owner already has an entry on e.DateYmd,
// overwrites its content. created_at and is_favorite of an existing row are kept.
func (r *Repo) Upsert(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := sqlite.Builder.
		Insert(table).
		Columns("owner_id", "date_ymd", "title", "content", "mood", "tags_json",
			"is_favorite", "is_temporary", "created_at", "updated_at").
		Values(string(e.OwnerID), e.DateYmd, e.Title, e.Content, int(e.Mood), sqlite.EncodeStrings(e.Tags),
			sqlite.Int(e.IsFavorite), sqlite.Int(e.IsTemporary), sqlite.Millis(e.CreatedAt), sqlite.Millis(e.UpdatedAt)).
		Suffix(upsertSuffix + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, r.q(ctx), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entry", e.DateYmd)
	}
	res := out.toDomain()
	return &res, nil
}

// GetByID returns the owner's entry with the given id. Entries of other
// owners are reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error) {
	return r.getOne(ctx, sq.Eq{"owner_id": string(owner), "entry_id": id}, id)
}

// GetByDate returns the owner's entry on ymd.
func (r *Repo) GetByDate(ctx context.Context, owner domain.OwnerID, ymd string) (*domain.Entry, error) {
	return r.getOne(ctx, sq.Eq{"owner_id": string(owner), "date_ymd": ymd}, ymd)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.Entry, error) {
	query, args, err := sqlite.Builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := sqlx.GetContext(ctx, r.q(ctx), &out, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entry", key)
	}
	res := out.toDomain()
	return &res, nil
}

// Delete removes the owner's entry. Its analysis goes with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, owner domain.OwnerID, id int64) error {
	query, args, err := sqlite.Builder.
		Delete(table).Where(sq.Eq{"owner_id": string(owner), "entry_id": id}).ToSql()
	if err != nil {
		return err
	}
	return sqlite.ExecAffecting(ctx, r.q(ctx), "entry", id, query, args...)
}

// SetFavorite flags or unflags the owner's entry.
func (r *Repo) SetFavorite(ctx context.Context, owner domain.OwnerID, id int64, favorite bool) error {
	query, args, err := sqlite.Builder.
		Update(table).
		Set("is_favorite", sqlite.Int(favorite)).
		Where(sq.Eq{"owner_id": string(owner), "entry_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return sqlite.ExecAffecting(ctx, r.q(ctx), "entry", id, query, args...)
}

// ---------------------------------------------------------------------------
// Listings and aggregates
// ---------------------------------------------------------------------------

// List returns the owner's entries matching f.
func (r *Repo) List(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error) {
	b := sqlite.Builder.Select(columns...).From(table).Where(where(owner, f)).OrderBy(orderBy(f))
	if limit := clampLimit(f.Limit); limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entries", owner)
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Count returns the number of non-temporary entries of owner.
func (r *Repo) Count(ctx context.Context, owner domain.OwnerID) (int, error) {
	return r.scalar(ctx, owner, "COUNT(*)")
}

// DistinctMoodCount returns how many different moods owner has recorded.
func (r *Repo) DistinctMoodCount(ctx context.Context, owner domain.OwnerID) (int, error) {
	return r.scalar(ctx, owner, "COUNT(DISTINCT mood)")
}

func (r *Repo) scalar(ctx context.Context, owner domain.OwnerID, expr string) (int, error) {
	query, args, err := sqlite.Builder.
		Select(expr).From(table).Where(where(owner, domain.EntryFilter{})).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := sqlx.GetContext(ctx, r.q(ctx), &n, query, args...); err != nil {
		return 0, sqlite.MapError(err, "entries", owner)
	}
	return n, nil
}

// DatesDesc returns up to limit distinct non-temporary entry dates, newest first.
func (r *Repo) DatesDesc(ctx context.Context, owner domain.OwnerID, limit int) ([]string, error) {
	query, args, err := sqlite.Builder.
		Select("DISTINCT date_ymd").From(table).
		Where(where(owner, domain.EntryFilter{})).
		OrderBy("date_ymd DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dates []string
	if err := sqlx.SelectContext(ctx, r.q(ctx), &dates, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entries", owner)
	}
	return dates, nil
}

// MoodStats counts entries per mood within [from, to], most frequent first.
func (r *Repo) MoodStats(ctx context.Context, owner domain.OwnerID, from, to string) ([]domain.MoodStat, error) {
	query, args, err := sqlite.Builder.
		Select("mood", "COUNT(*) AS cnt").From(table).
		Where(where(owner, domain.EntryFilter{From: from, To: to})).
		GroupBy("mood").
		OrderBy("cnt DESC", "mood ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Mood  int `db:"mood"`
		Count int `db:"cnt"`
	}
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entries", owner)
	}

	out := make([]domain.MoodStat, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.MoodStat{Mood: domain.MoodFromDB(rw.Mood), Count: rw.Count})
	}
	return out, nil
}

// MoodMap returns the mood of each dated entry within [from, to].
func (r *Repo) MoodMap(ctx context.Context, owner domain.OwnerID, from, to string) (map[string]domain.Mood, error) {
	query, args, err := sqlite.Builder.
		Select("date_ymd", "mood").From(table).
		Where(where(owner, domain.EntryFilter{From: from, To: to})).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		DateYmd string `db:"date_ymd"`
		Mood    int    `db:"mood"`
	}
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entries", owner)
	}

	out := make(map[string]domain.Mood, len(rows))
	for _, rw := range rows {
		out[rw.DateYmd] = domain.MoodFromDB(rw.Mood)
	}
	return out, nil
}

// TagCounts counts tag usage within [from, to], most used first, ties by tag.
func (r *Repo) TagCounts(ctx context.Context, owner domain.OwnerID, from, to string) ([]domain.TagCount, error) {
	query, args, err := sqlite.Builder.
		Select("j.value AS tag", "COUNT(*) AS cnt").
		From(table + ", json_each(entries.tags_json) AS j").
		Where(where(owner, domain.EntryFilter{From: from, To: to})).
		GroupBy("j.value").
		OrderBy("cnt DESC", "tag ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Tag   string `db:"tag"`
		Count int    `db:"cnt"`
	}
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "entries", owner)
	}

	out := make([]domain.TagCount, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.TagCount{Tag: rw.Tag, Count: rw.Count})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

type favoriteRow struct {
	row
	AnalysisID     int64  `db:"analysis_id"`
	Summary        string `db:"summary"`
	TriggerPattern string `db:"trigger_pattern"`
	ActionsJSON    string `db:"actions_json"`
	HashtagsJSON   string `db:"hashtags_json"`
	MissionSummary string `db:"mission_summary"`
	FullText       string `db:"full_text"`
	AnalyzedAt     int64  `db:"analyzed_at"`
}

// Favorites returns the owner's favorited entries that have an analysis,
// most recently updated first.
func (r *Repo) Favorites(ctx context.Context, owner domain.OwnerID) ([]domain.FavoriteCard, error) {
	cols := make([]string, 0, len(columns)+8)
	for _, c := range columns {
		cols = append(cols, "e."+c+" AS "+c)
	}
	cols = append(cols, "a.analysis_id AS analysis_id", "a.summary AS summary",
		"a.trigger_pattern AS trigger_pattern", "a.actions_json AS actions_json",
		"a.hashtags_json AS hashtags_json", "a.mission_summary AS mission_summary",
		"a.full_text AS full_text", "a.created_at AS analyzed_at")

	query, args, err := sqlite.Builder.
		Select(cols...).
		From(table + " AS e").
		Join("ai_analysis AS a ON a.entry_id = e.entry_id").
		Where(sq.Eq{"e.owner_id": string(owner), "e.is_favorite": 1}).
		OrderBy("e.updated_at DESC", "e.entry_id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []favoriteRow
	if err := sqlx.SelectContext(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "favorites", owner)
	}

	out := make([]domain.FavoriteCard, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.FavoriteCard{
			Entry: rw.row.toDomain(),
			Analysis: domain.Analysis{
				ID:             rw.AnalysisID,
				EntryID:        rw.ID,
				Summary:        rw.Summary,
				TriggerPattern: rw.TriggerPattern,
				Actions:        sqlite.DecodeStrings(rw.ActionsJSON),
				Hashtags:       sqlite.DecodeStrings(rw.HashtagsJSON),
				MissionSummary: rw.MissionSummary,
				FullText:       rw.FullText,
				CreatedAt:      sqlite.FromMillis(rw.AnalyzedAt),
			},
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Ownership
// ---------------------------------------------------------------------------

// ReassignOwner moves from's entries to to. An entry whose date to already
// has stays with from. Returns the number of moved rows.
func (r *Repo) ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, reassignSQL, string(to), string(from))
	if err != nil {
		return 0, sqlite.MapError(err, "entries", from)
	}
	return res.RowsAffected()
}

// PromoteTemporary clears the temporary flag on all of owner's entries.
func (r *Repo) PromoteTemporary(ctx context.Context, owner domain.OwnerID) (int64, error) {
	query, args, err := sqlite.Builder.
		Update(table).
		Set("is_temporary", 0).
		Where(sq.Eq{"owner_id": string(owner), "is_temporary": 1}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "entries", owner)
	}
	return res.RowsAffected()
}

// DeleteByOwner removes every entry of owner.
func (r *Repo) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	query, args, err := sqlite.Builder.Delete(table).Where(sq.Eq{"owner_id": string(owner)}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "entries", owner)
	}
	return res.RowsAffected()
}
