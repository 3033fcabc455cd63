// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the author of a chat message. The wire values are fixed
// by the backend: it stores "user" and "model" turns verbatim.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleModel:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE AND THREAD
// =============================================================================

// Message is a single turn in a conversation thread.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Thread is one client-local conversation with the assistant. Threads are
// ephemeral: created on "new chat", discarded on close, never persisted by
// the client.
type Thread struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// NewThread creates a thread with a locally unique time-based id, seeded
// with a single assistant greeting addressed to the user.
func NewThread(username string) *Thread {
	return &Thread{
		ID: "thread-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Messages: []Message{
			{
				Role:    RoleModel,
				Content: "Hi " + username + "! I'm your intent assistant. Tell me what you need and I'll capture the details for you.",
			},
		},
	}
}

// AddUserMessage appends a user turn to the thread.
func (t *Thread) AddUserMessage(content string) {
	t.Messages = append(t.Messages, Message{Role: RoleUser, Content: content})
}

// AddModelMessage appends an assistant turn to the thread.
func (t *Thread) AddModelMessage(content string) {
	t.Messages = append(t.Messages, Message{Role: RoleModel, Content: content})
}

// Len returns the number of messages in the thread.
func (t *Thread) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Messages)
}

// Last returns the most recent message, or nil for an empty thread.
func (t *Thread) Last() *Message {
	if t == nil || len(t.Messages) == 0 {
		return nil
	}
	return &t.Messages[len(t.Messages)-1]
}
