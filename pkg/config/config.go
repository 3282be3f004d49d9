// Package config resolves the immutable process configuration for the
// trading client: API credentials and endpoint. Values come from an optional
// YAML profile file, overridden by environment variables.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvKeyID   = "APCA_API_KEY_ID"
	EnvSecret  = "APCA_API_SECRET_KEY"
	EnvBaseURL = "APCA_API_BASE_URL"
)

// DefaultBaseURL is used when neither the profile nor the environment
// specify an API endpoint.
const DefaultBaseURL = "https://api.alpaca.markets"

// Config holds the brokerage API settings.
type Config struct {
	KeyID   string `yaml:"key_id"`
	Secret  string `yaml:"secret"`
	BaseURL string `yaml:"base_url"`
}

// Load builds the configuration. path may be empty, in which case only the
// environment is consulted. Missing credentials are an error.
func Load(path string) (*Config, error) {
	cfg := &Config{BaseURL: DefaultBaseURL}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultBaseURL
		}
	}

	if v := os.Getenv(EnvKeyID); v != "" {
		cfg.KeyID = v
	}
	if v := os.Getenv(EnvSecret); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if cfg.KeyID == "" {
		return nil, errors.Errorf("%s not set", EnvKeyID)
	}
	if cfg.Secret == "" {
		return nil, errors.Errorf("%s not set", EnvSecret)
	}
	return cfg, nil
}
