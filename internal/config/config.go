// Package config loads the dashboard configuration from the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. DASHBOARD_API_URL
const EnvPrefix = "DASHBOARD"

// Config holds runtime configuration for the dashboard
type Config struct {
	APIURL         string        `envconfig:"API_URL" default:"http://127.0.0.1:8000/api" validate:"required,url"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s" validate:"min=1s"`

	LogFile       string `envconfig:"LOG_FILE" default:"operadoras-dashboard.log" validate:"required"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10" validate:"gte=1"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3" validate:"gte=0"`

	ExportDir string `envconfig:"EXPORT_DIR" default:"."`
}

// Load reads an optional .env file and then the process environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Call it again after flags override values.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
