// Package gemini calls the Google Gemini generateContent endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
)

// maxLoggedBody caps how much of a failed response body is logged.
const maxLoggedBody = 2000

// Provider sends prompts to Gemini and parses the generated JSON.
type Provider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewProvider creates a Provider from the analysis configuration.
func NewProvider(cfg config.AnalysisConfig, logger *slog.Logger) *Provider {
	return NewProviderWithURL(cfg.Endpoint, cfg.APIKey, cfg.Timeout, cfg.RequestsPerMinute, logger)
}

// NewProviderWithURL creates a Provider with an explicit endpoint (for testing).
// A non-positive perMinute disables rate limiting.
func NewProviderWithURL(endpoint, apiKey string, timeout time.Duration, perMinute int, logger *slog.Logger) *Provider {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &Provider{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		log:        logger.With("adapter", "gemini"),
	}
}

// AnalyzeEntry asks Gemini for the analysis of one diary entry.
func (p *Provider) AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error) {
	text, err := p.generate(ctx, "analysis", provider.AnalysisPrompt(req))
	if err != nil {
		return nil, err
	}
	return provider.ParseAnalysis(text)
}

// SummarizeMonth asks Gemini for a monthly digest.
func (p *Provider) SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error) {
	text, err := p.generate(ctx, "monthly", provider.MonthlyPrompt(req))
	if err != nil {
		return nil, err
	}
	return provider.ParseMonthly(text)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// generate posts one prompt and returns the generated text. When the
// response does not have the usual candidates envelope the raw body is
// returned, so the caller's parser reports the problem.
func (p *Provider) generate(ctx context.Context, kind, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini: rate limit wait: %w", err)
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	p.log.DebugContext(ctx, "gemini request", slog.String("kind", kind), slog.Int("prompt_len", len(prompt)))

	start := time.Now()
	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.ErrorContext(ctx, "gemini non-2xx response",
			slog.String("kind", kind),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(body), maxLoggedBody)),
		)
		return "", domain.NewProviderError(resp.StatusCode)
	}

	p.log.DebugContext(ctx, "gemini response",
		slog.String("kind", kind),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	return extractText(body), nil
}

// extractText pulls candidates[0].content.parts[0].text out of the envelope.
func extractText(body []byte) string {
	if gjson.ValidBytes(body) {
		if text := gjson.GetBytes(body, "candidates.0.content.parts.0.text"); text.Type == gjson.String {
			return strings.TrimSpace(text.String())
		}
	}
	return string(body)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
