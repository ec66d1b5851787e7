package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "key-id")
	t.Setenv(EnvSecretKey, "secret")
	t.Setenv(EnvDataEndpoint, "https://data.alpaca.markets")
	t.Setenv(EnvBrokerEndpoint, "https://broker-api.alpaca.markets")

	cfg := FromEnv()

	if cfg.APIKey != "key-id" {
		t.Errorf("Expected APIKey 'key-id', got %q", cfg.APIKey)
	}
	if cfg.SecretKey != "secret" {
		t.Errorf("Expected SecretKey 'secret', got %q", cfg.SecretKey)
	}
	if cfg.DataEndpoint != "https://data.alpaca.markets" {
		t.Errorf("Unexpected DataEndpoint %q", cfg.DataEndpoint)
	}
	if cfg.BrokerEndpoint != "https://broker-api.alpaca.markets" {
		t.Errorf("Unexpected BrokerEndpoint %q", cfg.BrokerEndpoint)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "both present",
			cfg:     Config{APIKey: "k", SecretKey: "s"},
			wantErr: false,
		},
		{
			name:    "missing key",
			cfg:     Config{SecretKey: "s"},
			wantErr: true,
		},
		{
			name:    "missing secret",
			cfg:     Config{APIKey: "k"},
			wantErr: true,
		},
		{
			name:    "both missing",
			cfg:     Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCredentials()
			if tt.wantErr {
				if !errors.Is(err, ErrCredentialsNotConfigured) {
					t.Errorf("Expected ErrCredentialsNotConfigured, got %v", err)
				}
				if !strings.Contains(err.Error(), "Alpaca credentials not configured") {
					t.Errorf("Error message missing fixed text: %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := Config{
		APIKey:         "should-not-persist",
		SecretKey:      "should-not-persist",
		DataEndpoint:   "https://data.example.com",
		BrokerEndpoint: "https://broker.example.com",
	}

	if err := original.SaveTo(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	var loaded Config
	if err := loaded.loadFile(path); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.DataEndpoint != original.DataEndpoint {
		t.Errorf("DataEndpoint mismatch: expected %s, got %s", original.DataEndpoint, loaded.DataEndpoint)
	}
	if loaded.BrokerEndpoint != original.BrokerEndpoint {
		t.Errorf("BrokerEndpoint mismatch: expected %s, got %s", original.BrokerEndpoint, loaded.BrokerEndpoint)
	}

	// Credentials never hit disk.
	if loaded.APIKey != "" || loaded.SecretKey != "" {
		t.Error("Credentials must not be serialized to the config file")
	}
}

func TestEnvOverridesFileEndpoints(t *testing.T) {
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvSecretKey, "s")
	t.Setenv(EnvDataEndpoint, "https://env.example.com")

	cfg := FromEnv()

	if cfg.DataEndpoint != "https://env.example.com" {
		t.Errorf("Environment must win over file defaults, got %q", cfg.DataEndpoint)
	}
}
