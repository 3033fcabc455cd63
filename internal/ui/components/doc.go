// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the presentational elements of the
// intentdesk TUI: loading spinner, error banner, slot badges, chat
// bubbles, intent summary cards, and feed rows.
//
// Everything except the spinner is a pure render function over its inputs;
// no component owns network or timer side effects.
package components
