package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

func newBadgesCommand(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show earned and locked badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			owner, _ := ctxutil.OwnerFromCtx(ctx)

			statuses, err := e.core.Badges.Statuses(ctx, owner)
			if err != nil {
				return err
			}
			stats, err := e.core.Badges.Stats(ctx, owner)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, struct {
					Badges []domain.BadgeStatus
					Stats  domain.BadgeStats
				}{statuses, stats})
			}

			fmt.Fprintf(out, "entries %d · streak %d · moods %d\n", stats.EntryCount, stats.Streak, stats.DistinctMood)
			for _, s := range statuses {
				line := fmt.Sprintf("%d\t%s\t%s", s.Badge.ID, s.Badge.Name, s.Badge.Description)
				switch {
				case s.IsSelected:
					okColor.Fprintf(out, "%s\t(selected)\n", line)
				case s.IsEarned:
					okColor.Fprintln(out, line)
				default:
					dimColor.Fprintln(out, line)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newSelectBadgeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "select-badge <badge-id>",
		Short: "Show an earned badge on the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid badge id %q", args[0])
			}
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			owner, _ := ctxutil.OwnerFromCtx(ctx)

			if err := e.core.Badges.SelectBadge(ctx, owner, id); err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "Badge %d selected\n", id)
			return nil
		},
	}
}

func newDigestCommand(e *env) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "digest [YYYY-MM|last]",
		Short: "Build the digest of a month, or list the digests of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if year != 0 {
				list, err := e.core.Digests.Year(ctx, year)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					dimColor.Fprintln(out, "No digests.")
				}
				for _, d := range list {
					printDigest(out, d)
				}
				return nil
			}

			var d *domain.MonthlyDigest
			if len(args) == 0 || args[0] == "last" {
				d, err = e.core.Digests.EnsureLastMonth(ctx)
			} else {
				var ym string
				if ym, err = parseMonth(args[0], now()); err != nil {
					return err
				}
				d, err = e.core.Digests.EnsureMonthlyDigest(ctx, ym)
			}
			if err != nil {
				return err
			}
			printDigest(out, *d)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "list the stored digests of a year")
	return cmd
}

func printDigest(w io.Writer, d domain.MonthlyDigest) {
	titleColor.Fprintf(w, "%s  %s  %s\n", d.YearMonth, d.DominantMood.Label(), d.OneLineSummary)
	if d.EmotionFlow != "" {
		fmt.Fprintf(w, "  %s\n", d.EmotionFlow)
	}
	if d.DetailSummary != "" {
		fmt.Fprintf(w, "  %s\n", d.DetailSummary)
	}
	if len(d.Keywords) > 0 {
		dimColor.Fprintf(w, "  #%s\n", strings.Join(d.Keywords, " #"))
	}
}
