// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app implements the application controller: the root Bubble Tea
// model that owns every piece of mutable state and is the sole initiator
// of network operations.
//
// The root model drives the login view and the three-pane dashboard
// (personal feed, intent detail, community feed), manages the chat sheet
// lifecycle, consumes the realtime subscription, and schedules the
// one-shot timers for highlight expiry and sheet auto-close. Child views
// are pure functions of the state passed to them and report user actions
// back as messages.
//
// Two robustness rules apply throughout:
//
//   - Feed fetches carry a monotonic per-operation sequence number; a
//     response whose sequence is stale is discarded instead of applied.
//   - The new-intent highlight is keyed by intent id, never by list
//     index, so a timer firing after a reorder clears the right item.
package app
