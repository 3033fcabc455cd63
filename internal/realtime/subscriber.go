// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package realtime

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/time/rate"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

// =============================================================================
// EVENTS
// =============================================================================

// EventType identifies what a channel event carries.
type EventType string

const (
	// EventConnect signals the socket is (re)established.
	EventConnect EventType = "connect"
	// EventDisconnect signals the socket dropped; a redial follows.
	EventDisconnect EventType = "disconnect"
	// EventNewIntent carries one freshly finalized intent.
	EventNewIntent EventType = "new_intent"
)

// Event is one occurrence on the realtime channel. Intent is non-nil only
// for EventNewIntent.
type Event struct {
	Type   EventType
	Intent *model.Intent
}

// envelope is the wire framing for data events.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// =============================================================================
// SUBSCRIBER
// =============================================================================

const (
	// redialInterval paces reconnection attempts so a down server is not
	// hammered with dials.
	redialInterval = 2 * time.Second

	// eventBuffer absorbs bursts while the UI is mid-render.
	eventBuffer = 32
)

// Subscriber maintains the realtime connection and republishes its events
// on a Go channel. Safe for a single consumer.
type Subscriber struct {
	url     string
	events  chan Event
	limiter *rate.Limiter

	cancel    context.CancelFunc
	closeOnce sync.Once
	done      chan struct{}
}

// SocketURL derives the websocket endpoint from an HTTP base address.
func SocketURL(serverURL string) string {
	u := strings.TrimRight(serverURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/socket"
}

// NewSubscriber creates a subscriber for the given websocket URL. Start
// must be called before events flow.
func NewSubscriber(socketURL string) *Subscriber {
	return &Subscriber{
		url:     socketURL,
		events:  make(chan Event, eventBuffer),
		limiter: rate.NewLimiter(rate.Every(redialInterval), 1),
		done:    make(chan struct{}),
	}
}

// Events returns the channel carrying connectivity and data events.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Start launches the dial/read loop. It returns immediately.
func (s *Subscriber) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx)
}

// Close tears the subscription down. Idempotent.
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		close(s.done)
	})
}

// run dials, reads until failure, and redials until Close.
func (s *Subscriber) run(ctx context.Context) {
	defer close(s.events)

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}

		conn, _, err := websocket.Dial(ctx, s.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			continue
		}
		// Intent payloads are small; the default 32KB read limit is
		// raised to tolerate verbose slot values.
		conn.SetReadLimit(1 << 20)

		s.emit(ctx, Event{Type: EventConnect})
		s.readLoop(ctx, conn)

		conn.Close(websocket.StatusNormalClosure, "resubscribing")
		if ctx.Err() != nil {
			return
		}
		s.emit(ctx, Event{Type: EventDisconnect})
	}
}

// readLoop consumes frames until the connection errors or ctx ends.
func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			// Unknown framing from the server; skip the frame rather
			// than tearing the connection down.
			continue
		}
		if env.Event != string(EventNewIntent) {
			continue
		}

		var in model.Intent
		if err := json.Unmarshal(env.Data, &in); err != nil {
			continue
		}
		s.emit(ctx, Event{Type: EventNewIntent, Intent: &in})
	}
}

// emit delivers an event unless the subscriber is shutting down.
func (s *Subscriber) emit(ctx context.Context, ev Event) {
	select {
	case s.events <- ev:
	case <-ctx.Done():
	}
}
