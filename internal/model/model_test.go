// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSessionLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
		wantUser string
	}{
		{"plain", "alex", true, "alex"},
		{"surrounding whitespace", "  alex  ", true, "alex"},
		{"empty", "", false, ""},
		{"whitespace only", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			ok := s.Login(tt.username)
			if ok != tt.wantOK {
				t.Fatalf("Login(%q) = %v, want %v", tt.username, ok, tt.wantOK)
			}
			if s.Username != tt.wantUser {
				t.Errorf("Username = %q, want %q", s.Username, tt.wantUser)
			}
			if s.LoggedIn != tt.wantOK {
				t.Errorf("LoggedIn = %v, want %v", s.LoggedIn, tt.wantOK)
			}
		})
	}
}

func TestNewThreadSeedsGreeting(t *testing.T) {
	th := NewThread("alex")

	if th.Len() != 1 {
		t.Fatalf("new thread has %d messages, want 1", th.Len())
	}
	greeting := th.Messages[0]
	if greeting.Role != RoleModel {
		t.Errorf("greeting role = %q, want %q", greeting.Role, RoleModel)
	}
	if !strings.Contains(greeting.Content, "alex") {
		t.Errorf("greeting %q does not reference the username", greeting.Content)
	}
	if !strings.HasPrefix(th.ID, "thread-") {
		t.Errorf("thread id %q missing prefix", th.ID)
	}
}

func TestThreadAppend(t *testing.T) {
	th := NewThread("alex")
	th.AddUserMessage("I need a ride")
	th.AddModelMessage("Where from?")

	if th.Len() != 3 {
		t.Fatalf("thread length = %d, want 3", th.Len())
	}
	last := th.Last()
	if last == nil || last.Role != RoleModel || last.Content != "Where from?" {
		t.Errorf("unexpected last message: %+v", last)
	}
}

func TestPrependIntentDedup(t *testing.T) {
	feed := []Intent{
		{IntentID: "b"},
		{IntentID: "a"},
	}

	feed = PrependIntent(feed, Intent{IntentID: "c", IsNew: true})
	if len(feed) != 3 || feed[0].IntentID != "c" || !feed[0].IsNew {
		t.Fatalf("prepend of fresh intent failed: %+v", feed)
	}

	// Re-delivery of an id already in the feed moves it to the front
	// instead of duplicating it.
	feed = PrependIntent(feed, Intent{IntentID: "a", IsNew: true})
	if len(feed) != 3 {
		t.Fatalf("duplicate id grew the feed: %d items", len(feed))
	}
	if feed[0].IntentID != "a" || feed[1].IntentID != "c" || feed[2].IntentID != "b" {
		t.Errorf("unexpected order: %v %v %v", feed[0].IntentID, feed[1].IntentID, feed[2].IntentID)
	}
}

func TestClearHighlight(t *testing.T) {
	feed := []Intent{
		{IntentID: "a", IsNew: true},
		{IntentID: "b", IsNew: true},
	}

	feed = ClearHighlight(feed, "a")
	if feed[0].IsNew {
		t.Error("highlight for 'a' not cleared")
	}
	if !feed[1].IsNew {
		t.Error("highlight for 'b' cleared unexpectedly")
	}

	// Unknown id is a no-op, not a panic.
	feed = ClearHighlight(feed, "missing")
	if len(feed) != 2 {
		t.Errorf("feed length changed: %d", len(feed))
	}
}

func TestIntentJSONRoundTrip(t *testing.T) {
	// Wire shape fixed by the backend's intent document.
	raw := `{
		"intentId": "8f14e45f",
		"threadId": "thread-1700000000000",
		"userId": "alex",
		"intent": {
			"intentName": "FindCarpool_v1",
			"displayName": "Find a Carpool",
			"description": "User wants to find a carpool.",
			"slots": [
				{"name": "pickupLocation", "type": "string", "required": true}
			],
			"filledSlots": {"pickupLocation": "Downtown", "seats": 2}
		}
	}`

	var in Intent
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.IntentID != "8f14e45f" || in.UserID != "alex" {
		t.Errorf("identity fields: %+v", in)
	}
	if in.Detail.DisplayName != "Find a Carpool" {
		t.Errorf("displayName = %q", in.Detail.DisplayName)
	}
	if got := in.Detail.FilledSlots["pickupLocation"]; got != "Downtown" {
		t.Errorf("filledSlots[pickupLocation] = %v", got)
	}
	if in.IsNew {
		t.Error("IsNew must default to false for fetched intents")
	}

	// IsNew never leaks onto the wire.
	in.IsNew = true
	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "IsNew") || strings.Contains(string(out), "isNew") {
		t.Errorf("IsNew serialized: %s", out)
	}
}
