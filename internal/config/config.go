package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cesarvarela/alpaca-mcp/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "alpaca-mcp" // application name used for config directory

// Environment variables read by FromEnv.
const (
	EnvAPIKey         = "ALPACA_API_KEY"
	EnvSecretKey      = "ALPACA_SECRET_KEY"
	EnvDataEndpoint   = "ALPACA_ENDPOINT"
	EnvBrokerEndpoint = "ALPACA_BROKER_ENDPOINT"
)

// ErrCredentialsNotConfigured is returned before any network activity when
// either credential is missing. The message is part of the tool contract.
var ErrCredentialsNotConfigured = errors.New("Alpaca credentials not configured. Set ALPACA_API_KEY and ALPACA_SECRET_KEY.")

// Config holds the Alpaca credentials and API endpoints. It is built once
// and injected into the client rather than looked up ambiently per request.
type Config struct {
	// APIKey and SecretKey authenticate every request. Env-only, never
	// written to the config file.
	APIKey    string `yaml:"-"`
	SecretKey string `yaml:"-"`

	// DataEndpoint is the market data API base (bars, calendar, news).
	DataEndpoint string `yaml:"data_endpoint"`

	// BrokerEndpoint is the broker API base (assets).
	BrokerEndpoint string `yaml:"broker_endpoint"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// FromEnv builds a Config from the process environment. If a config file
// exists at the standard location it supplies endpoint defaults; environment
// variables always win. Credentials come only from the environment.
func FromEnv() *Config {
	cfg := &Config{}

	if path := ConfigPath(); fileExists(path) {
		if err := cfg.loadFile(path); err != nil {
			logging.Warn("Ignoring unreadable config file", "path", path, "error", err)
		}
	}

	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.SecretKey = os.Getenv(EnvSecretKey)
	if v := os.Getenv(EnvDataEndpoint); v != "" {
		cfg.DataEndpoint = v
	}
	if v := os.Getenv(EnvBrokerEndpoint); v != "" {
		cfg.BrokerEndpoint = v
	}

	return cfg
}

// ValidateCredentials checks that both credentials are present and non-empty.
func (c *Config) ValidateCredentials() error {
	if c.APIKey == "" || c.SecretKey == "" {
		return ErrCredentialsNotConfigured
	}
	return nil
}

// loadFile reads endpoint defaults from a YAML config file.
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// SaveTo writes the endpoint configuration to a specific path. Credentials
// are deliberately excluded from serialization.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Restrictive permissions, the file may name private broker endpoints
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
