// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
	"github.com/jeranaias/intentdesk-tui/internal/util"
)

// IntentCard renders the detail view of one intent: display name,
// description, author, and every filled slot as a badge line.
func IntentCard(theme *styles.Theme, in model.Intent, width int) string {
	var b strings.Builder

	b.WriteString(theme.CardTitle.Render(util.TruncateWidth(in.Detail.DisplayName, width)))
	b.WriteByte('\n')
	if in.Detail.Description != "" {
		b.WriteString(theme.CardDesc.Render(in.Detail.Description))
		b.WriteByte('\n')
	}
	b.WriteString(theme.FeedUser.Render("by " + in.UserID))
	b.WriteByte('\n')

	if len(in.Detail.FilledSlots) > 0 {
		b.WriteByte('\n')
		for _, line := range SlotBadges(theme, in.Detail.FilledSlots) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
