// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS intents (
	intent_id  TEXT PRIMARY KEY,
	thread_id  TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	document   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_intents_user ON intents(user_id);
CREATE INDEX IF NOT EXISTS idx_intents_thread ON intents(thread_id);

CREATE TABLE IF NOT EXISTS threads (
	thread_id TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL,
	state     TEXT NOT NULL
);
`

// SQLiteRepository implements Repository on a SQLite database file.
// Pass ":memory:" for tests.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (and if needed initializes) the database.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// modernc.org/sqlite serializes writes; a single connection avoids
	// table-lock errors under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Close implements Repository.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveIntent implements Repository.
func (r *SQLiteRepository) SaveIntent(ctx context.Context, in model.Intent) error {
	doc, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode intent: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO intents (intent_id, thread_id, user_id, created_at, document)
		 VALUES (?, ?, ?, ?, ?)`,
		in.IntentID, in.ThreadID, in.UserID, in.CreatedAt, string(doc))
	if err != nil {
		return fmt.Errorf("insert intent: %w", err)
	}
	return nil
}

// ListIntents implements Repository.
func (r *SQLiteRepository) ListIntents(ctx context.Context) ([]model.Intent, error) {
	return r.queryIntents(ctx,
		`SELECT document FROM intents ORDER BY created_at DESC, intent_id DESC`)
}

// ListUserIntents implements Repository.
func (r *SQLiteRepository) ListUserIntents(ctx context.Context, userID string) ([]model.Intent, error) {
	return r.queryIntents(ctx,
		`SELECT document FROM intents WHERE user_id = ? ORDER BY created_at DESC, intent_id DESC`,
		userID)
}

func (r *SQLiteRepository) queryIntents(ctx context.Context, query string, args ...any) ([]model.Intent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query intents: %w", err)
	}
	defer rows.Close()

	intents := []model.Intent{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		var in model.Intent
		if err := json.Unmarshal([]byte(doc), &in); err != nil {
			return nil, fmt.Errorf("decode intent: %w", err)
		}
		intents = append(intents, in)
	}
	return intents, rows.Err()
}

// HasIntentForThread implements Repository.
func (r *SQLiteRepository) HasIntentForThread(ctx context.Context, threadID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM intents WHERE thread_id = ? LIMIT 1`, threadID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query thread intent: %w", err)
	}
	return true, nil
}

// SaveThread implements Repository.
func (r *SQLiteRepository) SaveThread(ctx context.Context, ts *ThreadState) error {
	state, err := json.Marshal(ts)
	if err != nil {
		return fmt.Errorf("encode thread: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO threads (thread_id, user_id, state) VALUES (?, ?, ?)
		 ON CONFLICT(thread_id) DO UPDATE SET state = excluded.state`,
		ts.ThreadID, ts.UserID, string(state))
	if err != nil {
		return fmt.Errorf("upsert thread: %w", err)
	}
	return nil
}

// GetThread implements Repository.
func (r *SQLiteRepository) GetThread(ctx context.Context, threadID string) (*ThreadState, error) {
	var state string
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM threads WHERE thread_id = ?`, threadID).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query thread: %w", err)
	}

	var ts ThreadState
	if err := json.Unmarshal([]byte(state), &ts); err != nil {
		return nil, fmt.Errorf("decode thread: %w", err)
	}
	return &ts, nil
}
