// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the intent backend.
//
// The backend exposes three endpoints the client cares about:
//
//	GET  /intents          - all finalized intents (community feed)
//	GET  /intents/{user}   - intents for one user (personal feed)
//	POST /chat             - one conversation turn, returns {reply}
//
// Failures are terminal per attempt: there is no retry logic anywhere, the
// caller re-triggers the operation. Network failure, non-2xx status, and a
// malformed body all collapse into a single error for display.
package api
