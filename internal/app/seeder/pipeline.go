package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/account"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// Phase names in canonical execution order.
const (
	PhaseAccount  = "account"
	PhaseEntries  = "entries"
	PhaseAnalyses = "analyses"
	PhaseDigests  = "digests"
)

var allPhases = []string{PhaseAccount, PhaseEntries, PhaseAnalyses, PhaseDigests}

// DefaultPhases run when no filter is given. The provider-backed phases are
// opt-in.
var DefaultPhases = []string{PhaseAccount, PhaseEntries}

// Config controls a pipeline run.
type Config struct {
	config.SeedConfig

	// DryRun logs what would be written without touching the store.
	DryRun bool
	// Until is the last back-filled day. Zero means today (UTC).
	Until time.Time
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	svc     Services
	cfg     Config
	results map[string]PhaseResult

	owner   domain.OwnerID
	entries []domain.Entry
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, svc Services, cfg Config) *Pipeline {
	if cfg.Until.IsZero() {
		cfg.Until = time.Now().UTC()
	}
	return &Pipeline{
		log:     log.With("component", "seeder"),
		svc:     svc,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Owner returns the demo owner once the account phase ran.
func (p *Pipeline) Owner() domain.OwnerID {
	return p.owner
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, in canonical order; otherwise DefaultPhases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if len(phases) == 0 {
		phases = DefaultPhases
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("seeder: unknown phase %q", ph)
		}
	}

	var toRun []string
	for _, ph := range allPhases {
		if slices.Contains(phases, ph) {
			toRun = append(toRun, ph)
		}
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseAccount:
			result = p.runAccount(ctx)
		case PhaseEntries:
			result = p.runEntries(ctx)
		case PhaseAnalyses:
			result = p.runAnalyses(ctx)
		case PhaseDigests:
			result = p.runDigests(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.WarnContext(ctx, "phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			if phase == PhaseAccount {
				// Nothing else can run without an owner.
				break
			}
			continue
		}
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(p.results)))
	return nil
}

// runAccount registers the demo account, or signs in when it already exists.
func (p *Pipeline) runAccount(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		p.owner = domain.NewUserOwner(0)
		return PhaseResult{Skipped: 1}
	}

	id, err := p.svc.Accounts.Register(ctx, account.RegisterInput{
		Email:           p.cfg.Email,
		Nickname:        p.cfg.Nickname,
		Password:        p.cfg.Password,
		PasswordConfirm: p.cfg.Password,
	})
	if err == nil {
		p.owner = domain.NewUserOwner(id)
		return PhaseResult{Inserted: 1}
	}
	if !errors.Is(err, domain.ErrEmailAlreadyUsed) {
		return PhaseResult{Err: fmt.Errorf("register demo account: %w", err)}
	}

	acc, err := p.svc.Accounts.Login(ctx, account.LoginInput{Email: p.cfg.Email, Password: p.cfg.Password})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("sign in demo account: %w", err)}
	}
	p.owner = acc.Owner()
	return PhaseResult{Skipped: 1}
}

// runEntries back-fills one entry per day ending at cfg.Until.
func (p *Pipeline) runEntries(ctx context.Context) PhaseResult {
	if p.owner == "" {
		return PhaseResult{Err: errors.New("no demo owner, run the account phase first")}
	}
	if p.cfg.Days <= 0 {
		return PhaseResult{}
	}

	inputs := Backfill(p.cfg.Until, p.cfg.Days)
	if p.cfg.DryRun {
		for _, in := range inputs {
			p.log.DebugContext(ctx, "would write entry",
				slog.String("date", in.DateYmd),
				slog.String("mood", in.Mood.String()),
			)
		}
		return PhaseResult{Skipped: len(inputs)}
	}

	ownerCtx := ctxutil.WithOwner(ctx, p.owner)
	var result PhaseResult
	for _, in := range inputs {
		e, err := p.svc.Journal.UpsertEntry(ownerCtx, in)
		if err != nil {
			p.log.WarnContext(ctx, "entry not written",
				slog.String("date", in.DateYmd),
				slog.String("error", err.Error()),
			)
			result.Errors++
			continue
		}
		p.entries = append(p.entries, *e)
		result.Inserted++
	}
	return result
}

// runAnalyses asks the provider for a mind card of every seeded entry.
// Failures are counted, not fatal: the entry stays without a card.
func (p *Pipeline) runAnalyses(ctx context.Context) PhaseResult {
	if len(p.entries) == 0 {
		return PhaseResult{Skipped: 1}
	}

	ownerCtx := ctxutil.WithOwner(ctx, p.owner)
	var result PhaseResult
	for _, e := range p.entries {
		if _, err := p.svc.Analyzer.AnalyzeSafe(ownerCtx, e.ID); err != nil {
			p.log.WarnContext(ctx, "entry not analyzed",
				slog.Int64("entry_id", e.ID),
				slog.String("error", err.Error()),
			)
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}

// runDigests builds the digest of every month the seeded entries touch.
func (p *Pipeline) runDigests(ctx context.Context) PhaseResult {
	if len(p.entries) == 0 {
		return PhaseResult{Skipped: 1}
	}

	var months []string
	for _, e := range p.entries {
		ym := e.DateYmd[:len(domain.MonthLayout)]
		if !slices.Contains(months, ym) {
			months = append(months, ym)
		}
	}

	ownerCtx := ctxutil.WithOwner(ctx, p.owner)
	var result PhaseResult
	for _, ym := range months {
		if _, err := p.svc.Digests.EnsureMonthlyDigest(ownerCtx, ym); err != nil {
			p.log.WarnContext(ctx, "digest not built",
				slog.String("month", ym),
				slog.String("error", err.Error()),
			)
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}

// Backfill returns days entries, oldest first, ending at until.
// The content cycles through a fixed set of sample days.
func Backfill(until time.Time, days int) []journal.EntryInput {
	out := make([]journal.EntryInput, 0, days)
	for i := range days {
		day := until.AddDate(0, 0, i-days+1)
		s := samples[i%len(samples)]
		out = append(out, journal.EntryInput{
			DateYmd: domain.FormatDate(day),
			Title:   s.title,
			Content: s.content,
			Mood:    s.mood,
			Tags:    s.tags,
		})
	}
	return out
}

type sample struct {
	title   string
	content string
	mood    domain.Mood
	tags    []string
}

var samples = []sample{
	{"햇살 좋은 날", "점심에 회사 근처를 산책했다. 햇볕이 따뜻해서 오후 내내 기분이 좋았다.", domain.MoodJoy, []string{"산책", "날씨"}},
	{"발표 끝", "준비한 발표를 무사히 마쳤다. 질문에도 차분하게 답했다.", domain.MoodConfidence, []string{"회사", "발표"}},
	{"조용한 저녁", "저녁을 먹고 차를 마시며 책을 읽었다.", domain.MoodCalm, []string{"독서"}},
	{"평범한 하루", "특별한 일 없이 하루가 지나갔다.", domain.MoodNormal, nil},
	{"비 오는 월요일", "비가 와서 출근길이 길었고 하루 종일 처졌다.", domain.MoodDepressed, []string{"날씨", "출근"}},
	{"지하철", "지하철에서 누가 계속 밀어서 짜증이 났다.", domain.MoodAngry, []string{"출근"}},
	{"야근", "밤 늦게까지 일했다. 씻고 바로 자야겠다.", domain.MoodTired, []string{"회사", "야근"}},
}
