// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette. Chosen to degrade gracefully on 256-color terminals.
const (
	colorPrimary   = "#7C3AED" // violet
	colorSecondary = "#06B6D4" // cyan
	colorSuccess   = "#10B981" // emerald
	colorWarning   = "#F59E0B" // amber
	colorError     = "#F43F5E" // rose
	colorMuted     = "#6B7280" // gray
	colorSurface   = "#1F2937" // dark surface
	colorHighlight = "#FDE68A" // pale amber for new-intent rows
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CHROME
	// ==========================================================================

	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// ==========================================================================
	// LOGIN VIEW
	// ==========================================================================

	LoginBox    lipgloss.Style
	LoginPrompt lipgloss.Style
	LoginHint   lipgloss.Style

	// ==========================================================================
	// DASHBOARD PANES
	// ==========================================================================

	Pane          lipgloss.Style
	PaneActive    lipgloss.Style
	PaneTitle     lipgloss.Style
	EmptyState    lipgloss.Style
	FeedRow       lipgloss.Style
	FeedRowActive lipgloss.Style
	FeedRowNew    lipgloss.Style
	FeedUser      lipgloss.Style

	// ==========================================================================
	// INTENT DETAIL
	// ==========================================================================

	CardTitle  lipgloss.Style
	CardDesc   lipgloss.Style
	BadgeLabel lipgloss.Style
	BadgeValue lipgloss.Style

	// ==========================================================================
	// CHAT SHEET
	// ==========================================================================

	SheetBox        lipgloss.Style
	SheetTitle      lipgloss.Style
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	TypingBubble    lipgloss.Style
	InputPrompt     lipgloss.Style

	// ==========================================================================
	// STATUS AND FEEDBACK
	// ==========================================================================

	ErrorBanner  lipgloss.Style
	StatusBar    lipgloss.Style
	StatusOK     lipgloss.Style
	StatusDown   lipgloss.Style
	Spinner      lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme builds the theme for the detected terminal color profile.
func NewTheme() *Theme {
	return NewThemeWithProfile(termenv.ColorProfile())
}

// NewThemeWithProfile builds the theme for an explicit profile. Tests use
// termenv.Ascii for deterministic output.
func NewThemeWithProfile(profile termenv.Profile) *Theme {
	t := &Theme{ColorProfile: profile}

	primary := lipgloss.Color(colorPrimary)
	secondary := lipgloss.Color(colorSecondary)
	muted := lipgloss.Color(colorMuted)

	t.App = lipgloss.NewStyle().Padding(0, 1)
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.Subtitle = lipgloss.NewStyle().Foreground(muted)

	t.LoginBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 3)
	t.LoginPrompt = lipgloss.NewStyle().Bold(true)
	t.LoginHint = lipgloss.NewStyle().Foreground(muted).Italic(true)

	t.Pane = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(muted).
		Padding(0, 1)
	t.PaneActive = t.Pane.BorderForeground(primary)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	t.EmptyState = lipgloss.NewStyle().Foreground(muted).Italic(true)
	t.FeedRow = lipgloss.NewStyle()
	t.FeedRowActive = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	t.FeedRowNew = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight))
	t.FeedUser = lipgloss.NewStyle().Foreground(muted)

	t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.CardDesc = lipgloss.NewStyle().Foreground(muted)
	t.BadgeLabel = lipgloss.NewStyle().Foreground(secondary)
	t.BadgeValue = lipgloss.NewStyle().Bold(true)

	t.SheetBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)
	t.SheetTitle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.UserBubble = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary).
		Padding(0, 1)
	t.AssistantBubble = lipgloss.NewStyle().
		Background(lipgloss.Color(colorSurface)).
		Padding(0, 1)
	t.TypingBubble = lipgloss.NewStyle().Foreground(muted).Italic(true)
	t.InputPrompt = lipgloss.NewStyle().Bold(true).Foreground(secondary)

	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorError)).
		Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().Foreground(muted)
	t.StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	t.StatusDown = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning))
	t.Spinner = lipgloss.NewStyle().Foreground(secondary)
	t.ShortcutKey = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(muted)

	return t
}
