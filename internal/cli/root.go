// Package cli implements the diary command line over app.Core.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mooddiary-backend/internal/app"
	"github.com/heartmarshall/mooddiary-backend/internal/config"
)

// Opener builds the core a command runs against.
type Opener func(ctx context.Context) (*app.Core, error)

// env carries the opened core through a single command invocation.
type env struct {
	open Opener
	core *app.Core
}

// NewRootCommand builds the diary command tree. The core is opened before
// each subcommand and closed after it.
func NewRootCommand(open Opener) *cobra.Command {
	e := &env{open: open}

	root := &cobra.Command{
		Use:           "diary",
		Short:         "Mood diary",
		Long:          `Diary writes daily mood entries, asks the analysis provider for mind cards and tracks badges and monthly digests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			core, err := e.open(cmd.Context())
			if err != nil {
				return fmt.Errorf("open diary: %w", err)
			}
			e.core = core
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.core == nil {
				return nil
			}
			err := e.core.Close()
			e.core = nil
			return err
		},
	}

	root.AddCommand(
		newSessionCommand(e),
		newRegisterCommand(e),
		newLoginCommand(e),
		newLogoutCommand(e),
		newWithdrawCommand(e),
		newProfileCommand(e),
		newWriteCommand(e),
		newListCommand(e),
		newAnalyzeCommand(e),
		newPreviewCommand(e),
		newFavoriteCommand(e),
		newBadgesCommand(e),
		newSelectBadgeCommand(e),
		newDigestCommand(e),
	)
	return root
}

// DefaultOpener loads the configuration and opens the configured database.
// Logs go to stderr so they never mix with command output.
func DefaultOpener(ctx context.Context) (*app.Core, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := newCLILogger(os.Stderr, cfg.Log)
	return app.NewCore(ctx, cfg, logger)
}

// Execute runs the diary command line with the default opener.
func Execute(ctx context.Context) error {
	return NewRootCommand(DefaultOpener).ExecuteContext(ctx)
}

func newCLILogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Level == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
