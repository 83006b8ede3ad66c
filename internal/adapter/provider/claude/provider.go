// Package claude is an alternative analysis backend built on the Anthropic
// Messages API. It shares prompts and parsing with the Gemini adapter.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
)

// Provider sends prompts to Claude and parses the generated JSON.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
	log       *slog.Logger
}

// NewProvider creates a Provider from the analysis configuration.
// An empty cfg.BaseURL keeps the SDK's default base URL.
func NewProvider(cfg config.AnalysisConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		limiter:   rate.NewLimiter(limit, 1),
		log:       logger.With("adapter", "claude"),
	}
}

// AnalyzeEntry asks Claude for the analysis of one diary entry.
func (p *Provider) AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error) {
	text, err := p.complete(ctx, "analysis", provider.AnalysisPrompt(req))
	if err != nil {
		return nil, err
	}
	return provider.ParseAnalysis(text)
}

// SummarizeMonth asks Claude for a monthly digest.
func (p *Provider) SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error) {
	text, err := p.complete(ctx, "monthly", provider.MonthlyPrompt(req))
	if err != nil {
		return nil, err
	}
	return provider.ParseMonthly(text)
}

func (p *Provider) complete(ctx context.Context, kind, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("claude: rate limit wait: %w", err)
	}

	p.log.DebugContext(ctx, "claude request", slog.String("kind", kind), slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			p.log.ErrorContext(ctx, "claude non-2xx response",
				slog.String("kind", kind),
				slog.Int("status", apiErr.StatusCode),
			)
			return "", domain.NewProviderError(apiErr.StatusCode)
		}
		p.log.ErrorContext(ctx, "claude request failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return "", fmt.Errorf("claude: request failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
