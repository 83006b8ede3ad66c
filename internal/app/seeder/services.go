// Package seeder fills a fresh database with a demo account and a
// back-filled diary so the UI has something to show on first launch.
package seeder

import (
	"context"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/account"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
)

// Accounts registers or signs in the demo account.
type Accounts interface {
	Register(ctx context.Context, input account.RegisterInput) (int64, error)
	Login(ctx context.Context, input account.LoginInput) (*domain.Account, error)
}

// Journal stores entries for the owner in ctx.
type Journal interface {
	UpsertEntry(ctx context.Context, input journal.EntryInput) (*domain.Entry, error)
}

// Analyzer produces mind cards for stored entries.
type Analyzer interface {
	AnalyzeSafe(ctx context.Context, entryID int64) (*domain.Analysis, error)
}

// Digests builds monthly digests.
type Digests interface {
	EnsureMonthlyDigest(ctx context.Context, ym string) (*domain.MonthlyDigest, error)
}

// Services groups what the pipeline drives. app.Core satisfies every field.
type Services struct {
	Accounts Accounts
	Journal  Journal
	Analyzer Analyzer
	Digests  Digests
}
