// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for intentdesk.
//
// Configuration sources, in order of precedence:
//   - INTENTDESK_* environment variables
//   - ~/.intentdesk/config.toml
//   - built-in defaults
//
// A running TUI can pick up edits to the config file via Watch, which uses
// fsnotify on the config directory.
package config
