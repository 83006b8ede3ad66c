package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// SeedAccount inserts an account with a placeholder password hash.
func SeedAccount(t *testing.T, db *sqlx.DB) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	acc := domain.Account{
		Nickname:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "pbkdf2$1000$c2FsdA==$a2V5",
		CreatedAt:    time.UnixMilli(nowMillis()),
	}

	res, err := db.ExecContext(context.Background(),
		`INSERT INTO users (nickname, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		acc.Nickname, acc.Email, acc.PasswordHash, acc.CreatedAt.UnixMilli(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	acc.ID, err = res.LastInsertId()
	if err != nil {
		t.Fatalf("testhelper: SeedAccount last id: %v", err)
	}

	return acc
}

// SeedEntry inserts an entry for owner on ymd. Entries of anonymous owners
// are stored as temporary, mirroring what the journal service does.
func SeedEntry(t *testing.T, db *sqlx.DB, owner domain.OwnerID, ymd string, mood domain.Mood, tags ...string) domain.Entry {
	t.Helper()

	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry tags: %v", err)
	}

	now := nowMillis()
	e := domain.Entry{
		OwnerID:     owner,
		DateYmd:     ymd,
		Title:       "title " + ymd,
		Content:     "content of " + ymd,
		Mood:        mood,
		Tags:        tags,
		IsTemporary: owner.IsAnonymous(),
		CreatedAt:   time.UnixMilli(now),
		UpdatedAt:   time.UnixMilli(now),
	}

	res, err := db.ExecContext(context.Background(),
		`INSERT INTO entries (owner_id, date_ymd, title, content, mood, tags_json, is_temporary, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(owner), ymd, e.Title, e.Content, int(mood), string(tagsJSON), e.IsTemporary, now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		t.Fatalf("testhelper: SeedEntry last id: %v", err)
	}

	return e
}

// SeedAnalysis inserts a cached analysis for entryID.
func SeedAnalysis(t *testing.T, db *sqlx.DB, entryID int64) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO ai_analysis (entry_id, summary, trigger_pattern, actions_json, hashtags_json, mission_summary, full_text, created_at)
		 VALUES (?, 'summary', 'trigger', '["a","b","c"]', '["#tag"]', 'mission', 'full text.', ?)`,
		entryID, nowMillis(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalysis: %v", err)
	}
}

// SeedGrant grants badgeID to owner.
func SeedGrant(t *testing.T, db *sqlx.DB, owner domain.OwnerID, badgeID int64, selected bool) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO user_badges (owner_id, badge_id, earned_at, is_selected) VALUES (?, ?, ?, ?)`,
		string(owner), badgeID, nowMillis(), selected,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGrant: %v", err)
	}
}

// SeedSetting stores key=value for owner.
func SeedSetting(t *testing.T, db *sqlx.DB, owner domain.OwnerID, key, value string) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO settings (owner_id, key, value) VALUES (?, ?, ?)`,
		string(owner), key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSetting: %v", err)
	}
}

// SeedDigest stores a monthly digest row for owner.
func SeedDigest(t *testing.T, db *sqlx.DB, owner domain.OwnerID, ym string) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO monthly_summaries (owner_id, year_month, dominant_mood, one_line_summary, detail_summary, emotion_flow, keywords_json, updated_at)
		 VALUES (?, ?, ?, 'one line', 'detail', 'flow', '["k"]', ?)`,
		string(owner), ym, int(domain.MoodCalm), nowMillis(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDigest: %v", err)
	}
}

// CountRows returns the number of rows in table matching owner.
func CountRows(t *testing.T, db *sqlx.DB, table string, owner domain.OwnerID) int {
	t.Helper()

	var n int
	if err := db.GetContext(context.Background(), &n,
		`SELECT COUNT(*) FROM `+table+` WHERE owner_id = ?`, string(owner)); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
