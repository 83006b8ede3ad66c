package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.AnalysisPerMinute < 0 {
		return fmt.Errorf("server.analysis_per_minute must be >= 0 (got %d)", c.Server.AnalysisPerMinute)
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be >= 1 (got %d)", c.Database.MaxOpenConns)
	}

	if c.Auth.PasswordIterations < 1000 {
		return fmt.Errorf("auth.password_iterations must be >= 1000 (got %d)", c.Auth.PasswordIterations)
	}

	if err := c.Analysis.validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AnalysisConfig) validate() error {
	a.Provider = strings.ToLower(strings.TrimSpace(a.Provider))

	switch a.Provider {
	case ProviderGemini:
		if a.Endpoint == "" {
			return fmt.Errorf("endpoint is required for the gemini provider")
		}
	case ProviderClaude:
		if a.Model == "" {
			return fmt.Errorf("model is required for the claude provider")
		}
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderGemini, ProviderClaude, a.Provider)
	}

	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be >= 0 (got %d)", a.RequestsPerMinute)
	}
	return nil
}
