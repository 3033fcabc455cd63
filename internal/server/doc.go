// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server is the development stub backend: the same HTTP and
// websocket surface as the production intent service, with the AI replaced
// by a scripted slot-filling dialogue.
//
// It exists so the client can be developed and integration-tested offline.
// Conversations move through three states: GATHERING collects slot values
// one question at a time, AWAITING_CONFIRMATION reads back a summary, and a
// confirmed request is stored, broadcast to every websocket subscriber as a
// new_intent event, and marked COMPLETED.
package server
