// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and filesystem helpers shared across
// the intentdesk packages.
//
// The string helpers are rune- and width-aware so that feed rows and chat
// bubbles never split a multi-byte character or overflow a terminal column
// budget. SlotLabel implements the display transform for intent slot keys.
package util
