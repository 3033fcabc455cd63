// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Repository) {
	t.Helper()
	repo, err := store.NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(New(repo, logger).Routes())
	t.Cleanup(ts.Close)
	return ts, repo
}

// chat posts one message and returns the assistant reply.
func chat(t *testing.T, base, userID, threadID, message string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"userId":   userID,
		"threadId": threadID,
		"message":  message,
	})
	require.NoError(t, err)

	resp, err := http.Post(base+"/chat", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Reply
}

func getIntents(t *testing.T, url string) []model.Intent {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var intents []model.Intent
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&intents))
	return intents
}

func TestScriptedRideConversation(t *testing.T) {
	ts, _ := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	socketURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket"
	conn, _, err := websocket.Dial(ctx, socketURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	const threadID = "thread-ride-1"

	reply := chat(t, ts.URL, "alex", threadID, "I need a ride to the airport")
	assert.Contains(t, reply, "pick you up")

	reply = chat(t, ts.URL, "alex", threadID, "downtown")
	assert.Contains(t, reply, "headed")

	reply = chat(t, ts.URL, "alex", threadID, "the airport")
	assert.Contains(t, reply, "leave")

	reply = chat(t, ts.URL, "alex", threadID, "tomorrow at 9am")
	assert.Contains(t, reply, "Is that all correct?")
	assert.Contains(t, reply, "Pickup location")

	reply = chat(t, ts.URL, "alex", threadID, "yes")
	assert.Equal(t, CompletionReply, reply)

	intents := getIntents(t, ts.URL+"/intents")
	require.Len(t, intents, 1)
	in := intents[0]
	assert.Equal(t, "alex", in.UserID)
	assert.Equal(t, threadID, in.ThreadID)
	assert.Equal(t, "request_ride", in.Detail.IntentName)
	assert.Equal(t, "Downtown", in.Detail.FilledSlots["pickupLocation"])
	assert.Equal(t, "Tomorrow at 9am", in.Detail.FilledSlots["departureTime"])
	assert.NotEmpty(t, in.IntentID)
	assert.False(t, in.CreatedAt.IsZero())

	// The finalized intent was also broadcast on the socket.
	_, frame, err := conn.Read(ctx)
	require.NoError(t, err)
	var env struct {
		Event string       `json:"event"`
		Data  model.Intent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(frame, &env))
	assert.Equal(t, "new_intent", env.Event)
	assert.Equal(t, in.IntentID, env.Data.IntentID)

	// The thread is done; further messages do not double-post.
	reply = chat(t, ts.URL, "alex", threadID, "thanks!")
	assert.Equal(t, AlreadyCompletedReply, reply)
	assert.Len(t, getIntents(t, ts.URL+"/intents"), 1)
}

func TestNumberRetryAndRestart(t *testing.T) {
	ts, _ := newTestServer(t)
	const threadID = "thread-sell-1"

	reply := chat(t, ts.URL, "sam", threadID, "I want to sell my bike")
	assert.Contains(t, reply, "What are you selling?")

	reply = chat(t, ts.URL, "sam", threadID, "a mountain bike")
	assert.Contains(t, reply, "price")

	// Non-numeric answer to a number slot is re-asked.
	reply = chat(t, ts.URL, "sam", threadID, "quite a lot")
	assert.Contains(t, reply, "number")

	reply = chat(t, ts.URL, "sam", threadID, "$150")
	assert.Contains(t, reply, "new or used")

	reply = chat(t, ts.URL, "sam", threadID, "it's used")
	assert.Contains(t, reply, "Is that all correct?")
	assert.Contains(t, reply, "150")

	// Rejecting the summary clears the values and starts over.
	reply = chat(t, ts.URL, "sam", threadID, "no, that's wrong")
	assert.Contains(t, reply, "What are you selling?")
	assert.Empty(t, getIntents(t, ts.URL+"/intents"))
}

func TestUserIntentsAreFiltered(t *testing.T) {
	ts, repo := newTestServer(t)
	ctx := context.Background()

	seed := func(id, user string) {
		require.NoError(t, repo.SaveIntent(ctx, model.Intent{
			IntentID:  id,
			ThreadID:  "thread-" + id,
			UserID:    user,
			CreatedAt: time.Now().UTC(),
			Detail:    model.IntentDetail{DisplayName: "Seeded", FilledSlots: map[string]any{}},
		}))
	}
	seed("a", "alex")
	seed("b", "sam")

	all := getIntents(t, ts.URL+"/intents")
	assert.Len(t, all, 2)

	alex := getIntents(t, ts.URL+"/intents/alex")
	require.Len(t, alex, 1)
	assert.Equal(t, "a", alex[0].IntentID)

	assert.Empty(t, getIntents(t, ts.URL+"/intents/ghost"))
}

func TestChatRejectsIncompleteRequests(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/chat", "application/json",
		strings.NewReader(`{"userId":"alex"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Error)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
