// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jeranaias/intentdesk-tui/internal/realtime"
	"github.com/jeranaias/intentdesk-tui/internal/store"
)

// Server exposes the stub backend's HTTP and websocket surface.
type Server struct {
	logger   *slog.Logger
	repo     store.Repository
	hub      *Hub
	dialogue *Dialogue
}

// New wires a server on top of the given repository.
func New(repo store.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:   logger,
		repo:     repo,
		hub:      NewHub(logger),
		dialogue: NewDialogue(repo),
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/intents", s.handleIntents)
	r.Get("/intents/{userID}", s.handleUserIntents)
	r.Post("/chat", s.handleChat)
	r.Get("/socket", s.hub.HandleSocket)
	return r
}

// logRequests emits one structured line per request. The websocket route is
// skipped; its lifetime is logged by the hub instead.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/socket" {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIntents(w http.ResponseWriter, r *http.Request) {
	intents, err := s.repo.ListIntents(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to load intents", err)
		return
	}
	s.writeJSON(w, http.StatusOK, intents)
}

func (s *Server) handleUserIntents(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	intents, err := s.repo.ListUserIntents(r.Context(), userID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to load intents", err)
		return
	}
	s.writeJSON(w, http.StatusOK, intents)
}

// chatRequest mirrors the client's POST /chat body.
type chatRequest struct {
	UserID   string `json:"userId"`
	ThreadID string `json:"threadId"`
	Message  string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.ThreadID = strings.TrimSpace(req.ThreadID)
	if req.UserID == "" || req.ThreadID == "" || strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "userId, threadId and message are required", nil)
		return
	}

	reply, finalized, err := s.dialogue.Advance(r.Context(), req.UserID, req.ThreadID, req.Message)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to get AI response", err)
		return
	}

	if finalized != nil {
		s.logger.Info("intent posted",
			"intentId", finalized.IntentID,
			"userId", finalized.UserID,
			"intentName", finalized.Detail.IntentName,
		)
		s.hub.Broadcast(r.Context(), string(realtime.EventNewIntent), finalized)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		s.logger.Error(message, "status", status, "error", err)
	} else {
		s.logger.Warn(message, "status", status)
	}
	s.writeJSON(w, status, map[string]string{"error": message})
}
