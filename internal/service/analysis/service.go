// Package analysis runs the per-entry AI reading and serves it from a
// permanent cache.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// analysisRepo defines the analysis cache interface needed by analysis service.
// Reads are scoped to the entry's owner.
type analysisRepo interface {
	GetByEntryID(ctx context.Context, owner domain.OwnerID, entryID int64) (*domain.Analysis, error)
	InsertIgnore(ctx context.Context, a *domain.Analysis) (bool, error)
}

// entryRepo defines the entry lookup needed by analysis service.
type entryRepo interface {
	GetByID(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error)
}

// entryAnalyzer is the external provider producing an analysis for one entry.
type entryAnalyzer interface {
	AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error)
}

// reachability reports whether the provider can be reached at all.
type reachability interface {
	Available(ctx context.Context) bool
}

// txManager defines the transaction manager interface needed by analysis service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the analysis cache and result pipeline.
type Service struct {
	log      *slog.Logger
	analyses analysisRepo
	entries  entryRepo
	analyzer entryAnalyzer
	network  reachability
	tx       txManager
	now      func() time.Time
}

// NewService creates a new analysis service instance.
func NewService(
	logger *slog.Logger,
	analyses analysisRepo,
	entries entryRepo,
	analyzer entryAnalyzer,
	network reachability,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "analysis"),
		analyses: analyses,
		entries:  entries,
		analyzer: analyzer,
		network:  network,
		tx:       tx,
		now:      time.Now,
	}
}

func ownerFrom(ctx context.Context) (domain.OwnerID, error) {
	owner, ok := ctxutil.OwnerFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return owner, nil
}
