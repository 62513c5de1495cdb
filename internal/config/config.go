package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

type Config struct {
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	SessionFile        string `mapstructure:"SESSION_FILE"`
	MockAddr           string `mapstructure:"MOCK_ADDR"`
	MockMinDelayMS     int    `mapstructure:"MOCK_MIN_DELAY_MS"`
	MockMaxDelayMS     int    `mapstructure:"MOCK_MAX_DELAY_MS"`
	MockTokenSecret    string `mapstructure:"MOCK_TOKEN_SECRET"`
	DemoEmail          string `mapstructure:"DEMO_EMAIL"`
	DemoPassword       string `mapstructure:"DEMO_PASSWORD"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_FILE", ".telecare/session.json")
	v.SetDefault("MOCK_ADDR", ":8080")
	v.SetDefault("MOCK_MIN_DELAY_MS", 500)
	v.SetDefault("MOCK_MAX_DELAY_MS", 1500)
	v.SetDefault("MOCK_TOKEN_SECRET", "telecare-dev-secret")
	v.SetDefault("DEMO_EMAIL", "patient@demo.com")
	v.SetDefault("DEMO_PASSWORD", "demo123")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")
	v.BindEnv("SESSION_FILE")
	v.BindEnv("MOCK_ADDR")
	v.BindEnv("MOCK_MIN_DELAY_MS")
	v.BindEnv("MOCK_MAX_DELAY_MS")
	v.BindEnv("MOCK_TOKEN_SECRET")
	v.BindEnv("DEMO_EMAIL")
	v.BindEnv("DEMO_PASSWORD")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeoutSeconds)
	}
	if c.SessionFile == "" {
		return fmt.Errorf("SESSION_FILE is required")
	}
	if c.MockMinDelayMS < 0 {
		return fmt.Errorf("MOCK_MIN_DELAY_MS must not be negative, got %d", c.MockMinDelayMS)
	}
	if c.MockMaxDelayMS < c.MockMinDelayMS {
		return fmt.Errorf("MOCK_MAX_DELAY_MS (%d) must not be below MOCK_MIN_DELAY_MS (%d)",
			c.MockMaxDelayMS, c.MockMinDelayMS)
	}
	if c.MockTokenSecret == "" {
		return fmt.Errorf("MOCK_TOKEN_SECRET is required")
	}
	return nil
}
