// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/intentdesk-tui/internal/api"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
	"github.com/jeranaias/intentdesk-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete intentdesk configuration.
type Config struct {
	Version string `toml:"version"`

	Server ServerConfig `toml:"server"`
	User   UserConfig   `toml:"user"`
	UI     UIConfig     `toml:"ui"`
}

// ServerConfig locates the intent backend.
type ServerConfig struct {
	// URL is the HTTP base address of the backend.
	URL string `toml:"url"`

	// SocketURL is the websocket endpoint for the realtime channel.
	// Derived from URL when empty.
	SocketURL string `toml:"socket_url"`
}

// UserConfig holds identity defaults.
type UserConfig struct {
	// DefaultUsername pre-fills the login prompt. Login still requires an
	// explicit submit.
	DefaultUsername string `toml:"default_username"`
}

// UIConfig holds presentation options.
type UIConfig struct {
	// Markdown enables glamour rendering of assistant replies.
	Markdown bool `toml:"markdown"`

	// CompactFeed collapses feed rows to a single line.
	CompactFeed bool `toml:"compact_feed"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			URL: api.DefaultServerURL,
		},
		UI: UIConfig{
			Markdown: true,
		},
	}
}

// Dir returns the intentdesk configuration directory (~/.intentdesk).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".intentdesk"), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default path, applying environment
// overrides and derivations. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies INTENTDESK_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("INTENTDESK_SERVER_URL"); v != "" {
		c.Server.URL = v
		c.Server.SocketURL = "" // re-derive against the override
	}
	if v := os.Getenv("INTENTDESK_SOCKET_URL"); v != "" {
		c.Server.SocketURL = v
	}
	if v := os.Getenv("INTENTDESK_USERNAME"); v != "" {
		c.User.DefaultUsername = v
	}
}

// applyDerived fills values computable from others.
func (c *Config) applyDerived() {
	if c.Server.SocketURL == "" {
		c.Server.SocketURL = realtime.SocketURL(c.Server.URL)
	}
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.Server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server url must be http or https, got %q", u.Scheme)
	}

	w, err := url.Parse(c.Server.SocketURL)
	if err != nil || w.Scheme == "" || w.Host == "" {
		return fmt.Errorf("invalid socket url %q", c.Server.SocketURL)
	}
	if w.Scheme != "ws" && w.Scheme != "wss" {
		return fmt.Errorf("socket url must be ws or wss, got %q", w.Scheme)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration atomically to the default path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration atomically to an explicit path.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0o600)
}
