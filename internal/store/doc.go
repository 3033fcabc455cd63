// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists intents and conversation threads for the
// development stub server, backed by SQLite.
//
// The production backend owns real persistence; this store only has to be
// good enough for local development and integration tests, so documents
// are stored as JSON blobs keyed by id.
package store
