package metrics

import (
	"context"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/provider"
)

// analysisProvider is the provider contract shared by the Gemini and Claude adapters.
type analysisProvider interface {
	AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error)
	SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error)
}

// Provider decorates an analysis provider with call metrics.
type Provider struct {
	next analysisProvider
	m    *Metrics
}

// WrapProvider returns p instrumented with m.
func (m *Metrics) WrapProvider(p analysisProvider) *Provider {
	return &Provider{next: p, m: m}
}

// AnalyzeEntry forwards to the wrapped provider.
func (p *Provider) AnalyzeEntry(ctx context.Context, req provider.AnalysisRequest) (*provider.AnalysisResult, error) {
	start := time.Now()
	res, err := p.next.AnalyzeEntry(ctx, req)
	p.m.ObserveProvider("analyze_entry", time.Since(start), err)
	return res, err
}

// SummarizeMonth forwards to the wrapped provider.
func (p *Provider) SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error) {
	start := time.Now()
	res, err := p.next.SummarizeMonth(ctx, req)
	p.m.ObserveProvider("summarize_month", time.Since(start), err)
	return res, err
}
