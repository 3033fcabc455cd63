// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the modal chat sheet: the conversation viewport,
// the message composer, and the typing indicator.
//
// The sheet is a view over state owned by the application root. It holds
// no thread state of its own; the root passes the current thread in after
// every mutation and the sheet re-renders and scrolls to the newest
// message. User actions surface as SubmitMsg and CloseMsg for the root to
// handle.
package chat
