// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
)

// Spinner is the loading indicator shown while a feed fetch is in flight.
type Spinner struct {
	spinner spinner.Model
	theme   *styles.Theme
	message string
}

// NewSpinner creates a spinner with an ASCII-safe frame set.
func NewSpinner(theme *styles.Theme, message string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = theme.Spinner
	return Spinner{spinner: s, theme: theme, message: message}
}

// Tick starts the spinner's animation ticker.
func (s Spinner) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner frame plus its message.
func (s Spinner) View() string {
	return s.spinner.View() + " " + s.message
}
