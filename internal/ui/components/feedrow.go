// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
	"github.com/jeranaias/intentdesk-tui/internal/util"
)

// FeedRow renders one list row for an intent feed. selected applies the
// cursor style (personal feed only); the IsNew flag applies the transient
// arrival highlight (community feed).
func FeedRow(theme *styles.Theme, in model.Intent, width int, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	title := in.Detail.DisplayName
	if title == "" {
		title = in.IntentID
	}

	byline := " - " + in.UserID
	line := marker + util.TruncateWidth(title, width-len(marker)-len(byline)) + byline
	if in.IsNew {
		line += " *new*"
	}
	line = util.TruncateWidth(line, width)

	switch {
	case in.IsNew:
		return theme.FeedRowNew.Render(line)
	case selected:
		return theme.FeedRowActive.Render(line)
	default:
		return theme.FeedRow.Render(line)
	}
}
