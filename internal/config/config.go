package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/josejalvarezm/lti-launch-validator/internal/lti"
	"github.com/josejalvarezm/lti-launch-validator/internal/oauth"
)

// Config holds application configuration
type Config struct {
	ConsumerKey        string        `env:"LTI_CONSUMER_KEY,required,notEmpty"`
	SharedSecret       string        `env:"LTI_SHARED_SECRET,required,notEmpty"`
	LaunchURL          string        `env:"LTI_LAUNCH_URL,required,notEmpty"`
	HTTPMethod         string        `env:"LTI_HTTP_METHOD" envDefault:"POST"`
	TimestampTolerance time.Duration `env:"LTI_TIMESTAMP_TOLERANCE" envDefault:"24h"`
	KeepFileReferences bool          `env:"LTI_KEEP_FILE_REFERENCES" envDefault:"false"`

	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	FirebaseDatabaseURL string `env:"FIREBASE_DATABASE_URL"`

	Port           string `env:"PORT" envDefault:"8080"`
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	RateLimitRPS   int    `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int    `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Validate launch settings up front so a bad deployment fails at startup
	if _, err := oauth.BaseStringURI(cfg.LaunchURL); err != nil {
		return nil, fmt.Errorf("LTI_LAUNCH_URL: %w", err)
	}
	method, err := oauth.NormalizeAction(cfg.HTTPMethod)
	if err != nil {
		return nil, fmt.Errorf("LTI_HTTP_METHOD: %w", err)
	}
	cfg.HTTPMethod = method

	if cfg.TimestampTolerance <= 0 {
		return nil, fmt.Errorf("LTI_TIMESTAMP_TOLERANCE must be positive, got %s", cfg.TimestampTolerance)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return &cfg, nil
}

// ValidatorConfig returns the launch validation settings
func (c *Config) ValidatorConfig() lti.Config {
	return lti.Config{
		LaunchURL:          c.LaunchURL,
		Action:             c.HTTPMethod,
		TimestampTolerance: c.TimestampTolerance,
		KeepFileReferences: c.KeepFileReferences,
	}
}

// NewValidator builds the launch validator for the configured consumer
func (c *Config) NewValidator() *lti.Validator {
	return lti.NewValidator(c.ConsumerKey, c.SharedSecret, c.ValidatorConfig())
}
