// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/intentdesk-tui/internal/ui/components"
)

// Empty-state copy for the three panes.
const (
	emptyPersonal  = "You haven't posted any requests yet."
	emptyDetail    = "Select one of your intents to see its details."
	emptyCommunity = "No intents yet. Start a conversation!"
)

// View renders the current screen.
func (m Model) View() string {
	if m.sheetOpen {
		return m.sheet.View()
	}
	if !m.session.LoggedIn {
		return m.loginView()
	}
	return m.dashboardView()
}

// =============================================================================
// LOGIN VIEW
// =============================================================================

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("intentdesk"))
	b.WriteByte('\n')
	b.WriteString(m.theme.Subtitle.Render("Tell the assistant what you need."))
	b.WriteString("\n\n")
	b.WriteString(m.theme.LoginPrompt.Render("Who are you?"))
	b.WriteByte('\n')
	b.WriteString(m.loginInput.View())
	if m.loginErr != "" {
		b.WriteByte('\n')
		b.WriteString(m.theme.ErrorBanner.Render(m.loginErr))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.LoginHint.Render("enter to continue"))

	box := m.theme.LoginBox.Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// DASHBOARD VIEW
// =============================================================================

func (m Model) dashboardView() string {
	paneWidth := m.paneWidth()
	paneHeight := m.paneHeight()

	personal := m.renderPane("Your intents", m.personalPaneBody(paneWidth), paneWidth, paneHeight, m.focus == paneUser)
	detail := m.renderPane("Details", m.detailPaneBody(paneWidth), paneWidth, paneHeight, false)
	community := m.renderPane("Community feed", m.communityPaneBody(paneWidth), paneWidth, paneHeight, m.focus == paneCommunity)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, personal, detail, community)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.statusBar())
}

func (m Model) renderPane(title, body string, width, height int, active bool) string {
	style := m.theme.Pane
	if active {
		style = m.theme.PaneActive
	}
	content := m.theme.PaneTitle.Render(title) + "\n" + body
	return style.Width(width).Height(height).Render(content)
}

func (m Model) personalPaneBody(width int) string {
	switch {
	case !m.session.LoggedIn:
		return components.EmptyState(m.theme, "Log in to see your intents.")
	case m.userLoading:
		return m.spinner.View()
	case m.userErr != "":
		return components.ErrorBanner(m.theme, m.userErr, width)
	case len(m.userIntents) == 0:
		return components.EmptyState(m.theme, emptyPersonal)
	}

	rows := make([]string, 0, len(m.userIntents))
	for i, in := range m.userIntents {
		rows = append(rows, components.FeedRow(m.theme, in, width-2, i == m.selected && m.focus == paneUser))
	}
	return strings.Join(rows, "\n")
}

func (m Model) detailPaneBody(width int) string {
	selected := m.SelectedIntent()
	if selected == nil {
		return components.EmptyState(m.theme, emptyDetail)
	}
	return components.IntentCard(m.theme, *selected, width-2)
}

func (m Model) communityPaneBody(width int) string {
	switch {
	case m.communityLoading:
		return m.spinner.View()
	case m.communityErr != "":
		return components.ErrorBanner(m.theme, m.communityErr, width)
	case len(m.community) == 0:
		return components.EmptyState(m.theme, emptyCommunity)
	}

	rows := make([]string, 0, len(m.community))
	for _, in := range m.community {
		rows = append(rows, components.FeedRow(m.theme, in, width-2, false))
	}
	return strings.Join(rows, "\n")
}

func (m Model) statusBar() string {
	conn := m.theme.StatusDown.Render("o offline")
	if m.session.Connected {
		conn = m.theme.StatusOK.Render("* live")
	}

	shortcuts := m.theme.ShortcutKey.Render("n") + m.theme.ShortcutDesc.Render(" new chat  ") +
		m.theme.ShortcutKey.Render("tab") + m.theme.ShortcutDesc.Render(" switch pane  ") +
		m.theme.ShortcutKey.Render("r") + m.theme.ShortcutDesc.Render(" refresh  ") +
		m.theme.ShortcutKey.Render("q") + m.theme.ShortcutDesc.Render(" quit")

	return m.theme.StatusBar.Render(m.session.Username+"  ") + conn + "  " + shortcuts
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m Model) paneWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width/3 - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) paneHeight() int {
	if m.height <= 0 {
		return 20
	}
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}
