// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

// Thread status values, mirroring the production backend's state machine.
const (
	StatusGathering  = "GATHERING"
	StatusConfirming = "AWAITING_CONFIRMATION"
	StatusCompleted  = "COMPLETED"
)

// ThreadState is the server-side view of one conversation: the transcript
// plus the in-progress schema and slot values.
type ThreadState struct {
	ThreadID    string              `json:"threadId"`
	UserID      string              `json:"userId"`
	Status      string              `json:"status"`
	Messages    []model.Message     `json:"messages"`
	Schema      *model.IntentDetail `json:"schema,omitempty"`
	FilledSlots map[string]any      `json:"filledSlots"`
}

// Repository is the persistence surface the stub server needs.
type Repository interface {
	// SaveIntent stores one finalized intent.
	SaveIntent(ctx context.Context, in model.Intent) error

	// ListIntents returns all intents, newest first.
	ListIntents(ctx context.Context) ([]model.Intent, error)

	// ListUserIntents returns one user's intents, newest first.
	ListUserIntents(ctx context.Context, userID string) ([]model.Intent, error)

	// HasIntentForThread reports whether a thread already produced an
	// intent, so a repeated confirmation cannot double-post.
	HasIntentForThread(ctx context.Context, threadID string) (bool, error)

	// SaveThread upserts a conversation's state.
	SaveThread(ctx context.Context, ts *ThreadState) error

	// GetThread loads a conversation's state; nil when unknown.
	GetThread(ctx context.Context, threadID string) (*ThreadState, error)

	// Close releases the underlying database.
	Close() error
}
