package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/transport/middleware"
	"github.com/heartmarshall/mooddiary-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens the store,
// serves the local API and shuts down gracefully when ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Path),
		slog.String("analysis_provider", cfg.Analysis.Provider),
	)

	core, err := NewCore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer core.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHTTPHandler(core, cfg, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHTTPHandler mounts the local API over core.
func NewHTTPHandler(core *Core, cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:            logger,
		CORS:              cfg.CORS,
		Session:           core.Session,
		Metrics:           core.Metrics,
		Limiter:           limiter,
		AnalysisPerMinute: cfg.Server.AnalysisPerMinute,

		Accounts: rest.NewAccountHandler(core.Session, core.Account, logger),
		Entries:  rest.NewEntryHandler(core.Journal, core.Analysis, core.MindCards, logger),
		Badges:   rest.NewBadgeHandler(core.Badges, logger),
		Digests:  rest.NewDigestHandler(core.Digests, logger),
		Health:   rest.NewHealthHandler(core.DB, core.Network, BuildVersion()),
	})
}
