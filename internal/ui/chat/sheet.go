// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/ui/components"
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmitMsg is emitted when the user sends the composed message.
type SubmitMsg struct {
	Content string
}

// CloseMsg is emitted when the user dismisses the sheet.
type CloseMsg struct{}

// =============================================================================
// SHEET MODEL
// =============================================================================

// Sheet is the modal chat overlay.
type Sheet struct {
	theme *styles.Theme

	viewport viewport.Model
	input    textinput.Model

	// Markdown rendering of assistant turns.
	markdown bool
	renderer *glamour.TermRenderer

	thread   *model.Thread
	isTyping bool

	width  int
	height int
}

// NewSheet creates the chat sheet.
func NewSheet(theme *styles.Theme, markdown bool) Sheet {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.CharLimit = 2000
	ti.Focus()

	return Sheet{
		theme:    theme,
		viewport: viewport.New(0, 0),
		input:    ti,
		markdown: markdown,
	}
}

// SetSize resizes the sheet to fit within the given window dimensions.
func (s *Sheet) SetSize(width, height int) {
	s.width = width
	s.height = height

	innerW := s.innerWidth()
	s.viewport.Width = innerW
	s.viewport.Height = s.innerHeight()
	s.input.Width = innerW - len(s.input.Prompt) - 1

	if s.markdown {
		// Word wrap tracks the viewport, so rebuild on resize.
		s.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(innerW-4),
		)
	}
	s.refresh()
}

// SetThread hands the sheet the current thread and typing state. Called by
// the root after every thread mutation; the sheet re-renders and
// auto-scrolls to the newest message.
func (s *Sheet) SetThread(thread *model.Thread, isTyping bool) {
	s.thread = thread
	s.isTyping = isTyping
	s.refresh()
	s.viewport.GotoBottom()
}

// Value returns the trimmed composer content.
func (s *Sheet) Value() string {
	return strings.TrimSpace(s.input.Value())
}

// Reset clears the composer.
func (s *Sheet) Reset() {
	s.input.Reset()
}

// CanSend reports whether the send control is enabled: composer non-blank
// and no reply in flight.
func (s *Sheet) CanSend() bool {
	return !s.isTyping && s.Value() != ""
}

// Update handles input while the sheet is open.
func (s Sheet) Update(msg tea.Msg) (Sheet, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return s, func() tea.Msg { return CloseMsg{} }
		case tea.KeyEnter:
			if !s.CanSend() {
				return s, nil
			}
			content := s.Value()
			s.Reset()
			return s, func() tea.Msg { return SubmitMsg{Content: content} }
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	cmds = append(cmds, cmd)
	s.viewport, cmd = s.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return s, tea.Batch(cmds...)
}

// View renders the sheet box centered in the window.
func (s Sheet) View() string {
	var b strings.Builder
	b.WriteString(s.theme.SheetTitle.Render("New request"))
	b.WriteByte('\n')
	b.WriteString(s.viewport.View())
	b.WriteByte('\n')
	b.WriteString(s.input.View())
	b.WriteByte('\n')
	b.WriteString(s.theme.ShortcutKey.Render("enter") + s.theme.ShortcutDesc.Render(" send  ") +
		s.theme.ShortcutKey.Render("esc") + s.theme.ShortcutDesc.Render(" close"))

	box := s.theme.SheetBox.Width(s.innerWidth() + 2).Render(b.String())
	if s.width <= 0 || s.height <= 0 {
		return box
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// INTERNALS
// =============================================================================

func (s *Sheet) innerWidth() int {
	w := s.width - s.width/5 // sheet takes ~80% of the window
	if w < 20 {
		w = s.width
	}
	if w < 10 {
		w = 60
	}
	return w - 4
}

func (s *Sheet) innerHeight() int {
	h := s.height - 8
	if h < 3 {
		h = 10
	}
	return h
}

// refresh rebuilds the viewport content from the thread.
func (s *Sheet) refresh() {
	if s.thread == nil {
		s.viewport.SetContent("")
		return
	}

	width := s.viewport.Width
	lines := make([]string, 0, s.thread.Len()+1)
	for _, msg := range s.thread.Messages {
		rendered := ""
		if msg.Role == model.RoleModel && s.renderer != nil {
			if out, err := s.renderer.Render(msg.Content); err == nil {
				rendered = out
			}
		}
		lines = append(lines, components.ChatBubble(s.theme, msg, width, rendered))
	}
	if s.isTyping {
		lines = append(lines, components.TypingBubble(s.theme, width))
	}
	s.viewport.SetContent(strings.Join(lines, "\n"))
}
