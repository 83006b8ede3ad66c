package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/metrics"
	"github.com/heartmarshall/mooddiary-backend/internal/adapter/netcheck"
	"github.com/heartmarshall/mooddiary-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/mooddiary-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite"
	analysisrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/analysis"
	badgerepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/badge"
	digestrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/digest"
	entryrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/entry"
	sessionrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/session"
	settingrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/setting"
	userrepo "github.com/heartmarshall/mooddiary-backend/internal/adapter/sqlite/user"
	"github.com/heartmarshall/mooddiary-backend/internal/auth"
	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
	"github.com/heartmarshall/mooddiary-backend/internal/service/account"
	"github.com/heartmarshall/mooddiary-backend/internal/service/analysis"
	"github.com/heartmarshall/mooddiary-backend/internal/service/badge"
	"github.com/heartmarshall/mooddiary-backend/internal/service/digest"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
	"github.com/heartmarshall/mooddiary-backend/internal/service/mindcard"
	"github.com/heartmarshall/mooddiary-backend/internal/service/ownership"
	"github.com/heartmarshall/mooddiary-backend/internal/service/session"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// analysisProvider is implemented by every analysis backend.
type analysisProvider interface {
	AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error)
	SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error)
}

// reachability reports whether the analysis provider can be reached.
type reachability interface {
	Available(ctx context.Context) bool
}

// Core holds the opened store and every service built on it. The HTTP
// server, the diary CLI and the seeder all share it.
type Core struct {
	DB      *sqlx.DB
	Metrics *metrics.Metrics
	Network reachability

	Session   *session.Service
	Ownership *ownership.Service
	Account   *account.Service
	Journal   *journal.Service
	Badges    *badge.Service
	Analysis  *analysis.Service
	Digests   *digest.Service
	MindCards *mindcard.Service
}

// CoreOption customizes NewCore.
type CoreOption func(*coreOptions)

type coreOptions struct {
	provider analysisProvider
	network  reachability
}

// WithProvider replaces the configured analysis backend.
func WithProvider(p analysisProvider) CoreOption {
	return func(o *coreOptions) { o.provider = p }
}

// WithReachability replaces the network probe.
func WithReachability(r reachability) CoreOption {
	return func(o *coreOptions) { o.network = r }
}

// NewCore opens the database described by cfg and wires the services.
// The caller owns the returned Core and must Close it.
func NewCore(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...CoreOption) (*Core, error) {
	var o coreOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.NewCore: %w", err)
	}

	m := metrics.New()

	if o.provider == nil {
		o.provider = newProvider(cfg.Analysis, logger)
	}
	if o.network == nil {
		o.network = newReachability(cfg.Analysis, logger)
	}
	backend := m.WrapProvider(o.provider)

	txm := sqlite.NewTxManager(db)

	entries := entryrepo.New(db)
	analyses := analysisrepo.New(db)
	badges := badgerepo.New(db)
	digests := digestrepo.New(db)
	settings := settingrepo.New(db)
	users := userrepo.New(db)
	state := sessionrepo.New(db)

	sessionSvc := session.NewService(logger, state)
	ownershipSvc := ownership.NewService(logger, entries, digests, badges, settings, txm)
	badgeSvc := badge.NewService(logger, entries, badges, txm)
	journalSvc := journal.NewService(logger, entries, badgeSvc)
	analysisSvc := analysis.NewService(logger, analyses, entries, backend, o.network, txm)

	return &Core{
		DB:        db,
		Metrics:   m,
		Network:   o.network,
		Session:   sessionSvc,
		Ownership: ownershipSvc,
		Account: account.NewService(
			logger,
			users,
			settings,
			badges,
			entries,
			analyses,
			digests,
			ownershipSvc,
			badgeSvc,
			sessionSvc,
			auth.NewPasswordHasher(cfg.Auth.PasswordIterations),
			txm,
		),
		Journal:   journalSvc,
		Badges:    badgeSvc,
		Analysis:  analysisSvc,
		Digests:   digest.NewService(logger, digests, entries, backend, o.network, txm),
		MindCards: mindcard.NewService(logger, journalSvc, analysisSvc),
	}, nil
}

// ActAsCurrent returns ctx carrying the owner bound to the device.
// When nobody is bound an anonymous session is started first.
func (c *Core) ActAsCurrent(ctx context.Context) (context.Context, error) {
	owner, ok, err := c.Session.CurrentOwner(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		if owner, err = c.Session.StartAnonymousSession(ctx); err != nil {
			return nil, err
		}
	}
	return ctxutil.WithOwner(ctx, owner), nil
}

// Close releases the database.
func (c *Core) Close() error {
	return c.DB.Close()
}

func newProvider(cfg config.AnalysisConfig, logger *slog.Logger) analysisProvider {
	if cfg.Provider == config.ProviderClaude {
		return claude.NewProvider(cfg, logger)
	}
	return gemini.NewProvider(cfg, logger)
}

func newReachability(cfg config.AnalysisConfig, logger *slog.Logger) reachability {
	if cfg.ReachabilityHost == "" {
		return netcheck.Static(true)
	}
	return netcheck.NewChecker(cfg.ReachabilityHost, cfg.ReachabilityWait, logger)
}
