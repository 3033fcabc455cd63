// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestNewThemeWithProfile(t *testing.T) {
	theme := NewThemeWithProfile(termenv.Ascii)
	if theme == nil {
		t.Fatal("nil theme")
	}
	if theme.ColorProfile != termenv.Ascii {
		t.Errorf("profile = %v, want Ascii", theme.ColorProfile)
	}

	// Styles must render without panicking even on a dumb terminal.
	for name, s := range map[string]interface{ Render(...string) string }{
		"Title":           theme.Title,
		"ErrorBanner":     theme.ErrorBanner,
		"FeedRowNew":      theme.FeedRowNew,
		"UserBubble":      theme.UserBubble,
		"AssistantBubble": theme.AssistantBubble,
	} {
		if out := s.Render("x"); out == "" {
			t.Errorf("%s rendered empty", name)
		}
	}
}
