// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config resolves the Databricks workspace host and personal access
// token the client talks with. The environment always wins; when it is not
// set, the host falls back to a file in the XDG config dir and the token to
// the OS keychain. Secrets never land in the config file.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"brickctl/cli/internal/apierr"
	"brickctl/cli/internal/keychain"
	"brickctl/cli/internal/xdg"
)

// Environment variables read by FromEnv and Load.
const (
	EnvHost  = "DATABRICKS_HOST"
	EnvToken = "DATABRICKS_TOKEN"
)

// Config holds the workspace base URL and the bearer token for it.
// Both are required and immutable once constructed.
type Config struct {
	Host  string
	Token string
}

// FromEnv builds a Config strictly from the process environment.
// Missing or empty values fail with a ConfigError naming the variable;
// no file, keychain or network access happens on this path.
func FromEnv() (Config, error) {
	host := strings.TrimSpace(os.Getenv(EnvHost))
	if host == "" {
		return Config{}, &apierr.ConfigError{Name: EnvHost}
	}
	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		return Config{}, &apierr.ConfigError{Name: EnvToken}
	}
	return Config{Host: strings.TrimRight(host, "/"), Token: token}, nil
}

// Load resolves the configuration with local overrides: each value comes
// from the environment when set, otherwise the host from the config file
// written by `brickctl login` and the token from the OS keychain.
func Load() (Config, error) {
	host := strings.TrimSpace(os.Getenv(EnvHost))
	if host == "" {
		host = loadHostFile()
	}
	if host == "" {
		return Config{}, &apierr.ConfigError{Name: EnvHost}
	}

	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		if km, err := keychain.GetManager(); err == nil {
			token, _ = km.LoadToken()
		}
	}
	if token == "" {
		return Config{}, &apierr.ConfigError{Name: EnvToken}
	}

	return Config{Host: strings.TrimRight(host, "/"), Token: token}, nil
}

// fileSettings is the on-disk shape of the non-secret settings.
type fileSettings struct {
	Host string `json:"host"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// loadHostFile reads the saved host; a missing or unreadable file yields "".
func loadHostFile() string {
	p, err := path()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	var s fileSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s.Host)
}

// SaveHost persists the workspace host with 0600 permissions.
func SaveHost(host string) error {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return errors.New("host must not be empty")
	}
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(fileSettings{Host: host}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// ClearHost removes the saved host file. Missing files are not an error.
func ClearHost() error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
