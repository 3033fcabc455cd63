// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testIntent(id, user string, at time.Time) model.Intent {
	return model.Intent{
		IntentID:  id,
		ThreadID:  "thread-" + id,
		UserID:    user,
		CreatedAt: at,
		Detail: model.IntentDetail{
			DisplayName: "Intent " + id,
			FilledSlots: map[string]any{"pickupLocation": "Downtown"},
		},
	}
}

func TestSaveAndListIntents(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveIntent(ctx, testIntent("a", "alex", base)))
	require.NoError(t, repo.SaveIntent(ctx, testIntent("b", "sam", base.Add(time.Minute))))
	require.NoError(t, repo.SaveIntent(ctx, testIntent("c", "alex", base.Add(2*time.Minute))))

	all, err := repo.ListIntents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].IntentID, "newest first")
	assert.Equal(t, "a", all[2].IntentID)
	assert.Equal(t, "Downtown", all[0].Detail.FilledSlots["pickupLocation"])

	alex, err := repo.ListUserIntents(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, alex, 2)
	assert.Equal(t, "c", alex[0].IntentID)

	none, err := repo.ListUserIntents(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHasIntentForThread(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.HasIntentForThread(ctx, "thread-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SaveIntent(ctx, testIntent("a", "alex", time.Now())))

	ok, err = repo.HasIntentForThread(ctx, "thread-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestThreadUpsertRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	missing, err := repo.GetThread(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	ts := &ThreadState{
		ThreadID: "t1",
		UserID:   "alex",
		Status:   StatusGathering,
		Messages: []model.Message{
			{Role: model.RoleUser, Content: "I need a ride"},
		},
		FilledSlots: map[string]any{},
	}
	require.NoError(t, repo.SaveThread(ctx, ts))

	ts.Status = StatusConfirming
	ts.FilledSlots["pickupLocation"] = "Downtown"
	require.NoError(t, repo.SaveThread(ctx, ts))

	got, err := repo.GetThread(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusConfirming, got.Status)
	assert.Equal(t, "Downtown", got.FilledSlots["pickupLocation"])
	require.Len(t, got.Messages, 1)
	assert.Equal(t, model.RoleUser, got.Messages[0].Role)
}
