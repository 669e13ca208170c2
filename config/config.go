package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Server struct {
		Port string `env:"PORT" envDefault:"5250"`

		// Origins allowed to call the API from a browser
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	Feed struct {
		// File path or http(s) URL of the listings JSON array
		Source string `env:"FEED_SOURCE" envDefault:"data/properties.json"`

		// Per-request timeout in seconds
		Timeout int `env:"FEED_TIMEOUT" envDefault:"10"`

		MaxRetries int `env:"FEED_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"FEED_RETRY_DELAY" envDefault:"2"`

		// Reload interval in minutes, 0 disables periodic reloads
		RefreshInterval int `env:"FEED_REFRESH_INTERVAL" envDefault:"0"`
	}

	Clustering struct {
		// Grid cell size in degrees at BaseZoom
		BaseCellSize float64 `env:"CLUSTER_BASE_CELL_SIZE" envDefault:"0.005"`
		BaseZoom     int     `env:"CLUSTER_BASE_ZOOM" envDefault:"13"`
	}

	Policy struct {
		// Fraction of the mean price per sqft below which a listing is an opportunity
		OpportunityRatio float64 `env:"OPPORTUNITY_RATIO" envDefault:"0.8"`

		// Listings on the market longer than this get the stale risk weights
		RiskCutoffDays int `env:"RISK_CUTOFF_DAYS" envDefault:"60"`
	}

	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would make the service misbehave silently.
func (c *Config) Validate() error {
	if c.Feed.Source == "" {
		return fmt.Errorf("FEED_SOURCE must not be empty")
	}
	if c.Feed.MaxRetries < 0 {
		return fmt.Errorf("FEED_MAX_RETRIES must not be negative")
	}
	if c.Clustering.BaseCellSize <= 0 {
		return fmt.Errorf("CLUSTER_BASE_CELL_SIZE must be positive")
	}
	if c.Policy.OpportunityRatio <= 0 || c.Policy.OpportunityRatio > 1 {
		return fmt.Errorf("OPPORTUNITY_RATIO must be in (0, 1]")
	}
	return nil
}

func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.Timeout) * time.Second
}

func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Feed.RetryDelay) * time.Second
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Feed.RefreshInterval) * time.Minute
}
