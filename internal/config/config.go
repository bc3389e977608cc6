package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage modes accepted in STORAGE_MODE
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config holds all configuration for the antenna calculator service
type Config struct {
	// Server configuration
	Port        string `env:"PORT,default=8981"`
	Environment string `env:"ENVIRONMENT,default=development"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=auto"`

	// Report storage
	StorageMode     string        `env:"STORAGE_MODE,default=local"`
	LocalReportsDir string        `env:"LOCAL_REPORTS_DIR,default=./data"`
	GCPProjectID    string        `env:"GCP_PROJECT_ID"`
	GCSBucket       string        `env:"GCS_BUCKET"`
	ReportRetention time.Duration `env:"REPORT_RETENTION,default=720h"`

	// Related articles feed shown on the index page; empty disables it
	BlogFeedURL string        `env:"BLOG_FEED_URL,default=https://cyberdev.space/blog/rss.xml"`
	FeedTimeout time.Duration `env:"FEED_TIMEOUT,default=5s"`

	// Calculator defaults
	DefaultUnit  string  `env:"DEFAULT_UNIT,default=mm"`
	DefaultPower float64 `env:"DEFAULT_POWER,default=50"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return LoadWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadWithLookuper loads configuration from the given lookuper
func LoadWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.StorageMode {
	case StorageLocal:
	case StorageGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_MODE=%s", StorageGCS)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_MODE %q", c.StorageMode)
	}

	switch c.DefaultUnit {
	case "mm", "cm", "m":
	default:
		return fmt.Errorf("unsupported DEFAULT_UNIT %q", c.DefaultUnit)
	}

	if c.DefaultPower < 0 {
		return fmt.Errorf("DEFAULT_POWER must not be negative, got %g", c.DefaultPower)
	}
	return nil
}

// IsLocal reports whether the service runs on a developer machine
func (c *Config) IsLocal() bool {
	switch strings.ToLower(c.Environment) {
	case "local", "development", "dev":
		return true
	}
	return false
}

// ResolvedLogFormat turns LOG_FORMAT=auto into text for local runs and json elsewhere
func (c *Config) ResolvedLogFormat() string {
	if strings.EqualFold(c.LogFormat, "auto") || c.LogFormat == "" {
		if c.IsLocal() {
			return "text"
		}
		return "json"
	}
	return strings.ToLower(c.LogFormat)
}
