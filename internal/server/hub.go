// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// broadcastTimeout bounds each per-connection write so one stalled client
// cannot hold up a broadcast.
const broadcastTimeout = 5 * time.Second

// Hub fans events out to every connected websocket client.
type Hub struct {
	logger *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// HandleSocket upgrades the request and keeps the connection registered
// until the client goes away. Clients are listen-only; inbound frames are
// drained and discarded.
func (h *Hub) HandleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Local development tool; browsers and TUIs dial from anywhere.
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", "error", err)
		return
	}

	h.register(conn)
	h.logger.Info("socket connected", "clients", h.Count())
	defer func() {
		h.unregister(conn)
		conn.Close(websocket.StatusNormalClosure, "")
		h.logger.Info("socket disconnected", "clients", h.Count())
	}()

	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast sends one enveloped event to every connected client. Clients
// whose write fails are dropped.
func (h *Hub) Broadcast(ctx context.Context, event string, data any) {
	payload, err := json.Marshal(struct {
		Event string `json:"event"`
		Data  any    `json:"data"`
	}{Event: event, Data: data})
	if err != nil {
		h.logger.Error("encode broadcast", "event", event, "error", err)
		return
	}

	for _, conn := range h.snapshot() {
		wctx, cancel := context.WithTimeout(ctx, broadcastTimeout)
		err := conn.Write(wctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			h.unregister(conn)
			conn.Close(websocket.StatusPolicyViolation, "write failed")
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		out = append(out, conn)
	}
	return out
}
