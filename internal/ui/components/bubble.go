// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
)

// bubbleWidthFraction bounds a bubble to a share of the sheet width so the
// two roles stay visually separated.
const bubbleWidthFraction = 0.8

// ChatBubble renders one message as a role-discriminated bubble. User
// messages align right, assistant messages align left. renderedContent
// lets the caller pass pre-rendered markdown for assistant turns; when
// empty the raw content is used.
func ChatBubble(theme *styles.Theme, msg model.Message, width int, renderedContent string) string {
	content := msg.Content
	if renderedContent != "" {
		content = renderedContent
	}
	content = strings.TrimRight(content, "\n")

	maxBubble := int(float64(width) * bubbleWidthFraction)
	if maxBubble < 10 {
		maxBubble = width
	}

	var bubble string
	var align lipgloss.Position
	switch msg.Role {
	case model.RoleUser:
		bubble = theme.UserBubble.MaxWidth(maxBubble).Render(content)
		align = lipgloss.Right
	default:
		bubble = theme.AssistantBubble.MaxWidth(maxBubble).Render(content)
		align = lipgloss.Left
	}

	if width <= 0 {
		return bubble
	}
	return lipgloss.PlaceHorizontal(width, align, bubble)
}

// TypingBubble renders the synthetic "assistant is typing" indicator shown
// while a chat request is in flight.
func TypingBubble(theme *styles.Theme, width int) string {
	bubble := theme.TypingBubble.Render("Assistant is typing...")
	if width <= 0 {
		return bubble
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble)
}
