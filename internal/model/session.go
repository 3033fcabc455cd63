// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// Session is the client's process-wide identity state. The username is set
// once at login and immutable afterward; there is no logout path. Connected
// tracks the realtime channel for the status bar only and gates nothing.
type Session struct {
	Username  string
	LoggedIn  bool
	Connected bool
}

// Login validates and applies the username. Returns false (and leaves the
// session untouched) when the trimmed username is empty; any other string
// is accepted as-is. The username is an identifier, not a credential.
func (s *Session) Login(username string) bool {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return false
	}
	s.Username = trimmed
	s.LoggedIn = true
	return true
}
