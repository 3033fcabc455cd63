// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the intentdesk TUI.
//
// A single Theme struct holds every lipgloss style the views use, built
// once from the terminal's detected color profile so the whole app renders
// consistently on 16-color, 256-color, and truecolor terminals.
package styles
