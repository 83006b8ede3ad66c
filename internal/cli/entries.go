package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
)

// now is replaced in tests.
var now = time.Now

func newWriteCommand(e *env) *cobra.Command {
	var (
		date, mood, title string
		tags              []string
	)

	cmd := &cobra.Command{
		Use:     "write [content]",
		Aliases: []string{"w"},
		Short:   "Write or rewrite the entry of a day and show its mind card",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ymd, err := parseDay(date, now())
			if err != nil {
				return err
			}
			m, err := parseMood(mood)
			if err != nil {
				return err
			}

			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			preview, err := e.core.MindCards.SaveAndPrepare(ctx, journal.EntryInput{
				DateYmd: ymd,
				Title:   title,
				Content: strings.Join(args, " "),
				Mood:    m,
				Tags:    tags,
			})
			if err != nil {
				return err
			}

			okColor.Fprintf(cmd.OutOrStdout(), "Saved entry %d\n", preview.EntryID)
			printPreview(cmd.OutOrStdout(), preview)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "day of the entry (default today)")
	cmd.Flags().StringVarP(&mood, "mood", "m", "normal", "joy, confidence, calm, normal, depressed, angry or tired")
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag (repeatable)")
	return cmd
}

func newListCommand(e *env) *cobra.Command {
	var (
		month, since, until string
		favorites, asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries of a month or a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if favorites {
				cards, err := e.core.Journal.Favorites(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(out, cards)
				}
				for _, c := range cards {
					printEntry(out, c.Entry)
					dimColor.Fprintf(out, "    %s\n", c.Analysis.Comfort())
				}
				return nil
			}

			var entries []domain.Entry
			if since != "" || until != "" {
				from, err := parseDay(since, now())
				if err != nil {
					return err
				}
				to, err := parseDay(until, now())
				if err != nil {
					return err
				}
				entries, err = e.core.Journal.EntriesInRange(ctx, from, to)
				if err != nil {
					return err
				}
			} else {
				ym, err := parseMonth(month, now())
				if err != nil {
					return err
				}
				entries, err = e.core.Journal.EntriesByMonth(ctx, ym)
				if err != nil {
					return err
				}
			}

			if asJSON {
				return printJSON(out, entries)
			}
			if len(entries) == 0 {
				dimColor.Fprintln(out, "No entries.")
				return nil
			}
			for _, en := range entries {
				printEntry(out, en)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to list, YYYY-MM (default current month)")
	cmd.Flags().StringVar(&since, "since", "", "first day of a range (natural language or ISO)")
	cmd.Flags().StringVar(&until, "until", "", "last day of a range (default today)")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "list favorited mind cards instead")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newAnalyzeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <entry-id>",
		Short: "Ask the provider for the mind card of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			a, err := e.core.Analysis.AnalyzeSafe(ctx, id)
			if err != nil {
				return err
			}
			detail, err := e.core.Analysis.Detail(ctx, id)
			if err != nil {
				return err
			}

			titleColor.Fprintln(out, a.Summary)
			if detail.TriggerPattern != "" {
				fmt.Fprintf(out, "  trigger: %s\n", detail.TriggerPattern)
			}
			for i, m := range detail.Missions {
				okColor.Fprintf(out, "  %d. %s\n", i+1, m)
			}
			if len(detail.Hashtags) > 0 {
				dimColor.Fprintf(out, "  #%s\n", strings.Join(detail.Hashtags, " #"))
			}
			if detail.FullText != "" {
				fmt.Fprintf(out, "\n%s\n", detail.FullText)
			}
			return nil
		},
	}
}

func newPreviewCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <entry-id>",
		Short: "Show the short mind card of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			p, err := e.core.Analysis.PreviewFor(ctx, id)
			if err != nil {
				return err
			}
			printPreview(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newFavoriteCommand(e *env) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "favorite <entry-id>",
		Short: "Mark an analyzed entry as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			ctx, err := e.core.ActAsCurrent(cmd.Context())
			if err != nil {
				return err
			}
			if err := e.core.Journal.SetFavorite(ctx, id, !off); err != nil {
				return err
			}
			if off {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %d removed from favorites\n", id)
			} else {
				okColor.Fprintf(cmd.OutOrStdout(), "Entry %d added to favorites\n", id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "remove from favorites")
	return cmd
}

func parseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", raw)
	}
	return id, nil
}
