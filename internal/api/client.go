// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultServerURL is the backend base address used when no
	// configuration is present.
	DefaultServerURL = "http://localhost:5001"

	// DefaultTimeout bounds every request. Chat turns can take a while on
	// the server side (several LLM round trips per turn).
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize caps response bodies to prevent memory exhaustion
	// from a misbehaving server.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	// CompletionMarker is the contractual sentinel the backend embeds in
	// its reply when a conversation has been finalized into an intent.
	// The full server phrasing is "Perfect! I've posted your request on
	// your behalf."; the client matches on the stable substring.
	CompletionMarker = "I've posted your request"
)

// sharedHTTPClient is the pooled client for all backend requests.
// Connection pooling avoids a TCP handshake per feed refresh.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// =============================================================================
// ERRORS
// =============================================================================

// APIError represents a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (HTTP %d)", e.Status)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the body for POST /chat.
type ChatRequest struct {
	UserID   string `json:"userId"`
	ThreadID string `json:"threadId"`
	Message  string `json:"message"`
}

// ChatResponse is the reply envelope from POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// errorBody is the backend's error envelope, when it manages to send one.
type errorBody struct {
	Error string `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the intent backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. An empty URL falls
// back to DefaultServerURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    sharedHTTPClient,
	}
}

// BaseURL returns the backend base address this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient overrides the underlying HTTP client. Tests use this to
// inject short timeouts.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// IsCompletion reports whether an assistant reply carries the completion
// marker, meaning the server has finalized and posted an intent.
func IsCompletion(reply string) bool {
	return strings.Contains(reply, CompletionMarker)
}
