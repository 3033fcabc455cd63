// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared between the intentdesk
// client and the backend wire format: intents with their filled slots,
// ephemeral chat threads, and the client session.
//
// Intent mirrors the backend's intent document exactly (JSON tags match the
// server's field names). Thread is client-local and never persisted; its
// only durable outcome is an intent surfaced through the feeds.
package model
