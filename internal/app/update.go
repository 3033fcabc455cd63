// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/intentdesk-tui/internal/api"
	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
	"github.com/jeranaias/intentdesk-tui/internal/ui/chat"
)

// Update routes every message through the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sheet.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case communityLoadedMsg:
		return m.handleCommunityLoaded(msg)

	case userLoadedMsg:
		return m.handleUserLoaded(msg)

	case chatReplyMsg:
		return m.handleChatReply(msg)

	case highlightExpiredMsg:
		m.community = model.ClearHighlight(m.community, msg.intentID)
		return m, nil

	case sheetAutoCloseMsg:
		// Only close the sheet the timer was armed for; a fresh thread
		// opened in the meantime stays up.
		if m.sheetOpen && m.thread != nil && m.thread.ID == msg.threadID {
			m.closeSheet()
		}
		return m, nil

	case realtimeMsg:
		return m.handleRealtime(msg.event)

	case realtimeGoneMsg:
		m.session.Connected = false
		return m, nil

	case chat.SubmitMsg:
		return m.handleSend(msg.Content)

	case chat.CloseMsg:
		m.closeSheet()
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		return m, nil
	}

	// Everything else (spinner ticks, blink, viewport motion) flows to
	// the child components.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)
	if m.sheetOpen {
		m.sheet, cmd = m.sheet.Update(msg)
		cmds = append(cmds, cmd)
	} else if !m.session.LoggedIn {
		m.loginInput, cmd = m.loginInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit is always available.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.sheetOpen {
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return m, cmd
	}

	if !m.session.LoggedIn {
		return m.handleLoginKey(msg)
	}
	return m.handleDashboardKey(msg)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if !m.session.Login(m.loginInput.Value()) {
			m.loginErr = "Please enter a username."
			return m, nil
		}
		m.loginErr = ""
		return m, m.refreshUserFeed()
	}

	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "n":
		m.openSheet()
		return m, nil

	case "r":
		// Manual re-trigger; there is no automatic retry anywhere.
		m.communitySeq++
		m.communityLoading = true
		m.communityErr = ""
		return m, tea.Batch(
			fetchCommunityCmd(m.backend, m.communitySeq),
			m.refreshUserFeed(),
		)

	case "tab":
		if m.focus == paneUser {
			m.focus = paneCommunity
		} else {
			m.focus = paneUser
		}
		return m, nil

	case "up", "k":
		if m.focus == paneUser && m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.focus == paneUser && m.selected < len(m.userIntents)-1 {
			m.selected++
		}
		return m, nil
	}
	return m, nil
}

// =============================================================================
// FEED RESULTS
// =============================================================================

func (m Model) handleCommunityLoaded(msg communityLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.communitySeq {
		// A newer fetch superseded this response.
		return m, nil
	}
	m.communityLoading = false
	if msg.err != nil {
		m.communityErr = "Could not connect to the server. Is the backend running at " + m.cfg.Server.URL + "?"
		m.community = nil
		return m, nil
	}
	m.communityErr = ""
	feed := make([]model.Intent, len(msg.intents))
	copy(feed, msg.intents)
	for i := range feed {
		feed[i].IsNew = false
	}
	m.community = feed
	return m, nil
}

func (m Model) handleUserLoaded(msg userLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.userSeq {
		return m, nil
	}
	m.userLoading = false
	if msg.err != nil {
		m.userErr = "Could not load your intents: " + msg.err.Error()
		return m, nil
	}
	m.userErr = ""
	m.userIntents = msg.intents
	if m.selected >= len(m.userIntents) {
		m.selected = 0
	}
	return m, nil
}

// refreshUserFeed starts a sequence-guarded personal feed fetch.
func (m *Model) refreshUserFeed() tea.Cmd {
	m.userSeq++
	m.userLoading = true
	m.userErr = ""
	return fetchUserCmd(m.backend, m.session.Username, m.userSeq)
}

// =============================================================================
// REALTIME
// =============================================================================

func (m Model) handleRealtime(ev realtime.Event) (tea.Model, tea.Cmd) {
	// Always re-arm the listener first.
	cmds := []tea.Cmd{waitForEventCmd(m.events)}

	switch ev.Type {
	case realtime.EventConnect:
		m.session.Connected = true

	case realtime.EventDisconnect:
		m.session.Connected = false

	case realtime.EventNewIntent:
		if ev.Intent == nil {
			break
		}
		in := *ev.Intent
		in.IsNew = true
		m.community = model.PrependIntent(m.community, in)
		cmds = append(cmds, expireHighlightCmd(in.IntentID))

		// The comparison reads the live session state, so a username set
		// after subscription is still honored.
		if m.session.LoggedIn && in.UserID == m.session.Username {
			personal := in
			personal.IsNew = false
			m.userIntents = model.PrependIntent(m.userIntents, personal)
			if m.selected > 0 {
				// Keep the cursor on the same intent after the prepend.
				m.selected++
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// CHAT LIFECYCLE
// =============================================================================

// openSheet starts a fresh thread seeded with the assistant greeting.
func (m *Model) openSheet() {
	m.thread = model.NewThread(m.session.Username)
	m.isTyping = false
	m.sheetOpen = true
	m.sheet.Reset()
	m.sheet.SetSize(m.width, m.height)
	m.sheet.SetThread(m.thread, false)
}

// closeSheet discards the in-memory thread unconditionally. No draft
// persistence.
func (m *Model) closeSheet() {
	m.sheetOpen = false
	m.thread = nil
	m.isTyping = false
	m.sheet.Reset()
}

func (m Model) handleSend(content string) (tea.Model, tea.Cmd) {
	if content == "" || m.thread == nil {
		return m, nil
	}

	// Optimistic append before the network confirms; never rolled back.
	m.thread.AddUserMessage(content)
	m.isTyping = true
	m.sheet.SetThread(m.thread, true)

	return m, sendChatCmd(m.backend, api.ChatRequest{
		UserID:   m.session.Username,
		ThreadID: m.thread.ID,
		Message:  content,
	})
}

func (m Model) handleChatReply(msg chatReplyMsg) (tea.Model, tea.Cmd) {
	// The thread may have been discarded while the request was in
	// flight; a reply without a home is dropped.
	if m.thread == nil || m.thread.ID != msg.threadID {
		return m, nil
	}

	m.isTyping = false

	if msg.err != nil {
		// Chat failures stay inline as a synthetic assistant turn,
		// preserving conversational continuity.
		m.thread.AddModelMessage("Sorry, I ran into a problem: " + msg.err.Error() + ". Please try sending that again.")
		m.sheet.SetThread(m.thread, false)
		return m, nil
	}

	m.thread.AddModelMessage(msg.reply)
	m.sheet.SetThread(m.thread, false)

	if api.IsCompletion(msg.reply) {
		// The server finalized an intent: refresh the personal feed and
		// give the user a moment before the sheet closes itself.
		return m, tea.Batch(
			m.refreshUserFeed(),
			autoCloseSheetCmd(msg.threadID),
		)
	}
	return m, nil
}
