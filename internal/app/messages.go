// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/intentdesk-tui/internal/config"
	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
)

// =============================================================================
// ASYNC RESULT MESSAGES
// =============================================================================

// communityLoadedMsg carries the result of the community feed bootstrap.
type communityLoadedMsg struct {
	seq     uint64
	intents []model.Intent
	err     error
}

// userLoadedMsg carries the result of a personal feed fetch.
type userLoadedMsg struct {
	seq     uint64
	intents []model.Intent
	err     error
}

// chatReplyMsg carries the outcome of one POST /chat turn.
type chatReplyMsg struct {
	threadID string
	reply    string
	err      error
}

// =============================================================================
// TIMER MESSAGES
// =============================================================================

// highlightExpiredMsg fires 2.5s after an intent arrived over the realtime
// channel. Keyed by id: clearing is a no-op if the intent is gone or the
// flag was already cleared.
type highlightExpiredMsg struct {
	intentID string
}

// sheetAutoCloseMsg fires 2s after a completion reply, closing the chat
// sheet. Carries the thread id so a sheet reopened onto a fresh thread is
// left alone.
type sheetAutoCloseMsg struct {
	threadID string
}

// =============================================================================
// REALTIME MESSAGES
// =============================================================================

// realtimeMsg wraps one event from the push channel.
type realtimeMsg struct {
	event realtime.Event
}

// realtimeGoneMsg signals the subscriber's event channel closed for good.
type realtimeGoneMsg struct{}

// =============================================================================
// EXTERNAL MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent from outside the program (the fsnotify
// watcher) when the config file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
