// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/intentdesk-tui/internal/api"
	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
)

// =============================================================================
// TIMING CONSTANTS
// =============================================================================

const (
	// highlightDuration is how long a pushed intent keeps its "new"
	// highlight in the community feed.
	highlightDuration = 2500 * time.Millisecond

	// sheetCloseDelay is the pause between a completion reply and the
	// chat sheet auto-closing, giving the user a moment to read it.
	sheetCloseDelay = 2 * time.Second

	// fetchTimeout bounds a single feed fetch.
	fetchTimeout = 30 * time.Second

	// chatTimeout bounds one chat turn; the server may make several LLM
	// calls per turn.
	chatTimeout = 90 * time.Second
)

// Backend is the slice of the API client the controller uses. Tests
// substitute a scripted implementation.
type Backend interface {
	Intents(ctx context.Context) ([]model.Intent, error)
	UserIntents(ctx context.Context, userID string) ([]model.Intent, error)
	Chat(ctx context.Context, req api.ChatRequest) (string, error)
}

// =============================================================================
// NETWORK COMMANDS
// =============================================================================

// fetchCommunityCmd loads the community feed. seq tags the response so a
// superseded fetch is discarded on arrival.
func fetchCommunityCmd(backend Backend, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		intents, err := backend.Intents(ctx)
		return communityLoadedMsg{seq: seq, intents: intents, err: err}
	}
}

// fetchUserCmd loads one user's personal feed.
func fetchUserCmd(backend Backend, userID string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		intents, err := backend.UserIntents(ctx, userID)
		return userLoadedMsg{seq: seq, intents: intents, err: err}
	}
}

// sendChatCmd posts one conversation turn.
func sendChatCmd(backend Backend, req api.ChatRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()
		reply, err := backend.Chat(ctx, req)
		return chatReplyMsg{threadID: req.ThreadID, reply: reply, err: err}
	}
}

// =============================================================================
// TIMER COMMANDS
// =============================================================================

// expireHighlightCmd schedules the one-shot highlight expiry for one
// intent id.
func expireHighlightCmd(intentID string) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return highlightExpiredMsg{intentID: intentID}
	})
}

// autoCloseSheetCmd schedules the post-completion sheet close.
func autoCloseSheetCmd(threadID string) tea.Cmd {
	return tea.Tick(sheetCloseDelay, func(time.Time) tea.Msg {
		return sheetAutoCloseMsg{threadID: threadID}
	})
}

// =============================================================================
// REALTIME COMMANDS
// =============================================================================

// waitForEventCmd blocks on the subscription channel and republishes the
// next event into the program. Re-armed after every delivery.
func waitForEventCmd(events <-chan realtime.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return realtimeGoneMsg{}
		}
		return realtimeMsg{event: ev}
	}
}
