// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/intentdesk-tui/internal/config"
	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
	"github.com/jeranaias/intentdesk-tui/internal/ui/chat"
	"github.com/jeranaias/intentdesk-tui/internal/ui/components"
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
)

// =============================================================================
// VIEW STATE
// =============================================================================

// view selects the top-level screen.
type view int

const (
	viewLogin view = iota
	viewDashboard
)

// pane identifies which dashboard pane has keyboard focus.
type pane int

const (
	paneUser pane = iota
	paneCommunity
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the application controller. It owns all mutable state; child
// views render slices of it and report actions back as messages.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	backend Backend
	events  <-chan realtime.Event

	// Session
	session model.Session

	// Login view
	loginInput textinput.Model
	loginErr   string

	// Community feed
	community        []model.Intent
	communityLoading bool
	communityErr     string
	communitySeq     uint64

	// Personal feed
	userIntents []model.Intent
	userLoading bool
	userErr     string
	userSeq     uint64
	selected    int

	// Chat
	sheetOpen bool
	sheet     chat.Sheet
	thread    *model.Thread
	isTyping  bool

	// Chrome
	focus   pane
	spinner components.Spinner
	width   int
	height  int
}

// New creates the root model. events is the realtime subscription channel;
// it may be nil in tests that drive realtime messages directly.
func New(cfg *config.Config, backend Backend, events <-chan realtime.Event) Model {
	theme := styles.NewTheme()
	return NewWithTheme(cfg, backend, events, theme)
}

// NewWithTheme is New with an explicit theme, for tests that need
// deterministic (ASCII) rendering.
func NewWithTheme(cfg *config.Config, backend Backend, events <-chan realtime.Event, theme *styles.Theme) Model {
	li := textinput.New()
	li.Placeholder = "username"
	li.Prompt = "> "
	li.PromptStyle = theme.InputPrompt
	li.CharLimit = 64
	li.SetValue(cfg.User.DefaultUsername)
	li.Focus()

	return Model{
		theme:            theme,
		cfg:              cfg,
		backend:          backend,
		events:           events,
		loginInput:       li,
		sheet:            chat.NewSheet(theme, cfg.UI.Markdown),
		spinner:          components.NewSpinner(theme, "Loading intents..."),
		communityLoading: true,
		communitySeq:     1,
	}
}

// Init bootstraps the community feed and arms the realtime listener. The
// subscription is independent of login state.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		fetchCommunityCmd(m.backend, m.communitySeq),
		m.spinner.Tick(),
		textinput.Blink,
	}
	if m.events != nil {
		cmds = append(cmds, waitForEventCmd(m.events))
	}
	return tea.Batch(cmds...)
}

// SelectedIntent returns the personal-feed intent under the cursor, or nil.
func (m Model) SelectedIntent() *model.Intent {
	if m.selected < 0 || m.selected >= len(m.userIntents) {
		return nil
	}
	return &m.userIntents[m.selected]
}

// Session exposes the session state (used by the status bar and tests).
func (m Model) Session() model.Session {
	return m.session
}

// Thread exposes the active thread (tests).
func (m Model) Thread() *model.Thread {
	return m.thread
}

// CommunityIntents exposes the community feed (tests).
func (m Model) CommunityIntents() []model.Intent {
	return m.community
}

// UserIntents exposes the personal feed (tests).
func (m Model) UserIntents() []model.Intent {
	return m.userIntents
}

// SheetOpen reports whether the chat sheet is showing (tests).
func (m Model) SheetOpen() bool {
	return m.sheetOpen
}
