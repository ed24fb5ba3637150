// Package config loads repogallery settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inovacc/repogallery/internal/application"
	"github.com/inovacc/repogallery/internal/loader"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultOwner is the account shown when REPOGALLERY_OWNER is unset. Set it
// at build time:
//
//	go build -ldflags "-X github.com/inovacc/repogallery/internal/config.DefaultOwner=octocat"
var DefaultOwner = ""

// Config holds every externally supplied setting
type Config struct {
	Owner     string        `envconfig:"OWNER"`
	APIURL    string        `envconfig:"API_URL" default:"https://api.github.com/"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Addr      string        `envconfig:"ADDR" default:"127.0.0.1:8080"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env (if present) and the REPOGALLERY_* environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(application.EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Owner == "" {
		cfg.Owner = DefaultOwner
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return errors.New("no account configured: set REPOGALLERY_OWNER or pass --owner")
	}

	if _, err := loader.ParseBaseURL(c.APIURL); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}

	return nil
}
