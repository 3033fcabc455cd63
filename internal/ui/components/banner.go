// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
)

// ErrorBanner renders a feed-replacing error panel. Used when a bootstrap
// fetch fails; chat failures never use this (they stay inline in the
// thread).
func ErrorBanner(theme *styles.Theme, message string, width int) string {
	style := theme.ErrorBanner
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(message)
}

// EmptyState renders the placeholder text for a feed with no intents.
func EmptyState(theme *styles.Theme, message string) string {
	return theme.EmptyState.Render(message)
}
