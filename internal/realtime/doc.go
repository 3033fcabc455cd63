// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package realtime implements the client side of the backend's push
// channel: a WebSocket that broadcasts a "new_intent" event whenever any
// user's conversation finalizes into an intent.
//
// The subscriber dials at startup (independent of login state), redials
// forever with a rate-limited backoff, and surfaces connect/disconnect
// transitions alongside data events on a single channel. Connectivity is
// observability only; nothing else in the client is gated on it.
package realtime
