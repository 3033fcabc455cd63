// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

func TestSocketURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:5001", "ws://localhost:5001/socket"},
		{"http://localhost:5001/", "ws://localhost:5001/socket"},
		{"https://intents.example.com", "wss://intents.example.com/socket"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SocketURL(tt.in))
	}
}

// wsTestServer accepts websocket connections and runs handler on each.
func wsTestServer(t *testing.T, handler func(ctx context.Context, conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "done")
		handler(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func waitForEvent(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %q", want)
			}
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestSubscriberDeliversNewIntent(t *testing.T) {
	payload := model.Intent{
		IntentID: "i1",
		ThreadID: "t1",
		UserID:   "alex",
		Detail: model.IntentDetail{
			DisplayName: "Find a Carpool",
			FilledSlots: map[string]any{"pickupLocation": "Downtown"},
		},
	}

	srv := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		data, _ := json.Marshal(payload)
		frame, _ := json.Marshal(map[string]json.RawMessage{
			"event": json.RawMessage(`"new_intent"`),
			"data":  data,
		})
		if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
			return
		}
		<-ctx.Done()
	})

	sub := NewSubscriber(SocketURL(srv.URL))
	sub.Start()
	defer sub.Close()

	waitForEvent(t, sub.Events(), EventConnect)
	ev := waitForEvent(t, sub.Events(), EventNewIntent)
	require.NotNil(t, ev.Intent)
	assert.Equal(t, "i1", ev.Intent.IntentID)
	assert.Equal(t, "alex", ev.Intent.UserID)
	assert.Equal(t, "Find a Carpool", ev.Intent.Detail.DisplayName)
}

func TestSubscriberSkipsMalformedFrames(t *testing.T) {
	srv := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		conn.Write(ctx, websocket.MessageText, []byte(`{{{not json`))
		conn.Write(ctx, websocket.MessageText, []byte(`{"event": "heartbeat", "data": {}}`))
		conn.Write(ctx, websocket.MessageText, []byte(`{"event": "new_intent", "data": {"intentId": "ok", "threadId": "t", "userId": "u", "intent": {"displayName": "D", "description": "", "filledSlots": {}}}}`))
		<-ctx.Done()
	})

	sub := NewSubscriber(SocketURL(srv.URL))
	sub.Start()
	defer sub.Close()

	ev := waitForEvent(t, sub.Events(), EventNewIntent)
	assert.Equal(t, "ok", ev.Intent.IntentID)
}

func TestSubscriberReconnects(t *testing.T) {
	var conns atomic.Int32
	srv := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		n := conns.Add(1)
		if n == 1 {
			// Drop the first connection immediately to force a redial.
			return
		}
		<-ctx.Done()
	})

	sub := NewSubscriber(SocketURL(srv.URL))
	sub.Start()
	defer sub.Close()

	waitForEvent(t, sub.Events(), EventConnect)
	waitForEvent(t, sub.Events(), EventDisconnect)
	waitForEvent(t, sub.Events(), EventConnect)
	assert.GreaterOrEqual(t, conns.Load(), int32(2))
}

func TestSubscriberCloseEndsEventStream(t *testing.T) {
	srv := wsTestServer(t, func(ctx context.Context, conn *websocket.Conn) {
		<-ctx.Done()
	})

	sub := NewSubscriber(SocketURL(srv.URL))
	sub.Start()
	waitForEvent(t, sub.Events(), EventConnect)

	sub.Close()
	sub.Close() // idempotent

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				return // channel drained and closed
			}
		case <-deadline:
			t.Fatal("event channel not closed after Close")
		}
	}
}
