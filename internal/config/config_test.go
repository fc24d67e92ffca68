// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"errors"
	"testing"

	"brickctl/cli/internal/apierr"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		token     string
		wantHost  string
		wantToken string
		wantMiss  string // name carried by the expected ConfigError, "" for success
	}{
		{
			name:      "both set",
			host:      "https://adb-1234.5.azuredatabricks.net",
			token:     "dapi1234567890abcdef",
			wantHost:  "https://adb-1234.5.azuredatabricks.net",
			wantToken: "dapi1234567890abcdef",
		},
		{
			name:      "trailing slash trimmed",
			host:      "https://adb-1234.5.azuredatabricks.net/",
			token:     "dapi1234567890abcdef",
			wantHost:  "https://adb-1234.5.azuredatabricks.net",
			wantToken: "dapi1234567890abcdef",
		},
		{
			name:     "missing host",
			host:     "",
			token:    "dapi1234567890abcdef",
			wantMiss: EnvHost,
		},
		{
			name:     "missing token",
			host:     "https://adb-1234.5.azuredatabricks.net",
			token:    "",
			wantMiss: EnvToken,
		},
		{
			name:     "whitespace-only token",
			host:     "https://adb-1234.5.azuredatabricks.net",
			token:    "   ",
			wantMiss: EnvToken,
		},
		{
			name:     "both missing reports host first",
			host:     "",
			token:    "",
			wantMiss: EnvHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvHost, tt.host)
			t.Setenv(EnvToken, tt.token)

			cfg, err := FromEnv()
			if tt.wantMiss != "" {
				var ce *apierr.ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("FromEnv() error = %v, want ConfigError", err)
				}
				if ce.Name != tt.wantMiss {
					t.Errorf("ConfigError.Name = %q, want %q", ce.Name, tt.wantMiss)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv() unexpected error: %v", err)
			}
			if cfg.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", cfg.Host, tt.wantHost)
			}
			if cfg.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", cfg.Token, tt.wantToken)
			}
		})
	}
}

func TestLoadPrefersEnvOverFile(t *testing.T) {
	// Point the XDG config dir at a scratch directory with a saved host,
	// then confirm the environment still wins.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := SaveHost("https://saved.cloud.databricks.com/"); err != nil {
		t.Fatalf("SaveHost() failed: %v", err)
	}

	t.Setenv(EnvHost, "https://env.cloud.databricks.com")
	t.Setenv(EnvToken, "dapi00ff00ff00ff")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Host != "https://env.cloud.databricks.com" {
		t.Errorf("Host = %q, want env value to win over the saved file", cfg.Host)
	}
}

func TestSaveHostRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvHost, "")
	t.Setenv(EnvToken, "dapi00ff00ff00ff")

	if err := SaveHost("https://saved.cloud.databricks.com/"); err != nil {
		t.Fatalf("SaveHost() failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Host != "https://saved.cloud.databricks.com" {
		t.Errorf("Host = %q, want saved host without trailing slash", cfg.Host)
	}

	if err := ClearHost(); err != nil {
		t.Fatalf("ClearHost() failed: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() after ClearHost should fail without env host")
	}
}

func TestSaveHostRejectsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := SaveHost("   "); err == nil {
		t.Error("SaveHost should reject an empty host")
	}
}
