package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Seed     SeedConfig     `yaml:"seed"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// AnalysisPerMinute caps analysis and digest requests per owner. Zero disables it.
	AnalysisPerMinute int `yaml:"analysis_per_minute" env:"SERVER_ANALYSIS_PER_MINUTE" env-default:"20"`
}

// DatabaseConfig holds settings of the local SQLite file.
type DatabaseConfig struct {
	Path         string        `yaml:"path"            env:"DATABASE_PATH"            env-default:"./data/mooddiary.db"`
	MaxOpenConns int           `yaml:"max_open_conns"  env:"DATABASE_MAX_OPEN_CONNS"  env-default:"1"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"    env:"DATABASE_BUSY_TIMEOUT"    env-default:"5s"`

	// SkipMigrations disables applying migrations on open.
	SkipMigrations bool `yaml:"skip_migrations" env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds local credential settings.
type AuthConfig struct {
	PasswordIterations int `yaml:"password_iterations" env:"AUTH_PASSWORD_ITERATIONS" env-default:"120000"`
}

// Analysis providers.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// AnalysisConfig holds settings of the external sentiment-analysis provider.
type AnalysisConfig struct {
	Provider          string        `yaml:"provider"            env:"ANALYSIS_PROVIDER"            env-default:"gemini"`
	Endpoint          string        `yaml:"endpoint"            env:"ANALYSIS_ENDPOINT"            env-default:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"`
	BaseURL           string        `yaml:"base_url"            env:"ANALYSIS_BASE_URL"`
	APIKey            string        `yaml:"api_key"             env:"ANALYSIS_API_KEY"`
	Model             string        `yaml:"model"               env:"ANALYSIS_MODEL"               env-default:"claude-sonnet-4-5"`
	MaxTokens         int64         `yaml:"max_tokens"          env:"ANALYSIS_MAX_TOKENS"          env-default:"2048"`
	Timeout           time.Duration `yaml:"timeout"             env:"ANALYSIS_TIMEOUT"             env-default:"30s"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"ANALYSIS_REQUESTS_PER_MINUTE" env-default:"30"`
	ReachabilityHost  string        `yaml:"reachability_host"   env:"ANALYSIS_REACHABILITY_HOST"   env-default:"generativelanguage.googleapis.com:443"`
	ReachabilityWait  time.Duration `yaml:"reachability_wait"   env:"ANALYSIS_REACHABILITY_WAIT"   env-default:"3s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SeedConfig describes the demo account created by the seeder.
type SeedConfig struct {
	Email    string `yaml:"email"    env:"SEED_EMAIL"    env-default:"demo@mooddiary.local"`
	Password string `yaml:"password" env:"SEED_PASSWORD" env-default:"demodiary2026"`
	Nickname string `yaml:"nickname" env:"SEED_NICKNAME" env-default:"데모"`
	Days     int    `yaml:"days"     env:"SEED_DAYS"     env-default:"14"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SplitList splits a comma-separated setting, trimming blanks.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
