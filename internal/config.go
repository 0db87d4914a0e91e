package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	State   StateConfig   `mapstructure:"state"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StateConfig locates the persisted credential store on the user's machine.
type StateConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config from environment variables only, for
// running the client without a config.yml next to the binary.
func LoadConfigFromEnv() *Config {
	timeout, err := time.ParseDuration(getEnv("TIMESHEET_API_TIMEOUT", "15s"))
	if err != nil {
		timeout = 15 * time.Second
	}

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("TIMESHEET_API_BASE_URL", ""),
			Timeout: timeout,
		},
		State: StateConfig{
			Path: getEnv("TIMESHEET_STATE_PATH", DefaultStatePath()),
		},
		Logging: LoggingConfig{
			Level:  getEnv("TIMESHEET_LOG_LEVEL", "info"),
			Format: getEnv("TIMESHEET_LOG_FORMAT", "text"),
		},
	}
}

// DefaultStatePath is where the credential store lives unless configured
// otherwise.
func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timesheet-state.db"
	}
	return filepath.Join(home, ".timesheet-dashboard", "state.db")
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.State.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("state config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %s: %w", c.BaseURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("base_url must be absolute with a host, got: %s", c.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url scheme must be http or https, got: %s", parsed.Scheme)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

func (c *StateConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}
