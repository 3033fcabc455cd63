// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// INTENT TYPES
// =============================================================================

// Slot describes one parameter in an intent schema.
type Slot struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"` // "string", "number", or "enum"
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"` // for enum slots
}

// IntentDetail is the schema-plus-values payload nested under "intent" in
// the backend's intent document.
type IntentDetail struct {
	IntentName  string         `json:"intentName,omitempty"`
	DisplayName string         `json:"displayName"`
	Description string         `json:"description"`
	Slots       []Slot         `json:"slots,omitempty"`
	FilledSlots map[string]any `json:"filledSlots"`
}

// Intent is one finalized, structured request extracted from a conversation.
type Intent struct {
	IntentID  string       `json:"intentId"`
	ThreadID  string       `json:"threadId"`
	UserID    string       `json:"userId"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
	Detail    IntentDetail `json:"intent"`

	// IsNew drives the temporary feed highlight for intents that arrived
	// over the realtime channel. Client-only, never sent by the server.
	IsNew bool `json:"-"`
}

// =============================================================================
// FEED HELPERS
// =============================================================================

// PrependIntent returns feed with in at the front. If an intent with the
// same id is already present it is removed first, so a push that races the
// bootstrap fetch cannot produce a duplicate row.
func PrependIntent(feed []Intent, in Intent) []Intent {
	out := make([]Intent, 0, len(feed)+1)
	out = append(out, in)
	for _, existing := range feed {
		if existing.IntentID == in.IntentID {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// ContainsIntent reports whether feed holds an intent with the given id.
func ContainsIntent(feed []Intent, intentID string) bool {
	for _, in := range feed {
		if in.IntentID == intentID {
			return true
		}
	}
	return false
}

// ClearHighlight returns feed with the IsNew flag cleared on the intent
// with the given id. Clearing is idempotent: a stale expiry timer firing
// for an id that is no longer flagged (or no longer present) is a no-op.
func ClearHighlight(feed []Intent, intentID string) []Intent {
	for i := range feed {
		if feed[i].IntentID == intentID {
			feed[i].IsNew = false
		}
	}
	return feed
}
