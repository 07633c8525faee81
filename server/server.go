// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package server exposes the assistant over HTTP.
//
// One endpoint per conversation operation: POST /chat runs a turn,
// POST /sessions/:id/reset discards a session, GET /healthz reports
// liveness. Clients that omit the session ID get a fresh one back in
// the response and pass it on subsequent turns.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatService is the conversation surface the server fronts.
type ChatService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// Server serves the assistant's HTTP API.
type Server struct {
	service ChatService
	engine  *gin.Engine
	logger  *slog.Logger
}

// New creates a server fronting the given chat service.
func New(service ChatService) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		service: service,
		engine:  gin.New(),
		logger:  slog.Default().With("component", "server"),
	}

	s.engine.Use(gin.Recovery())
	s.engine.POST("/chat", s.handleChat)
	s.engine.POST("/sessions/:id/reset", s.handleReset)
	s.engine.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.engine.Run(addr)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := s.service.Chat(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		s.logger.Error("chat turn failed", "session", sessionID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}

func (s *Server) handleReset(c *gin.Context) {
	sessionID := c.Param("id")

	if err := s.service.ResetSession(c.Request.Context(), sessionID); err != nil {
		s.logger.Error("session reset failed", "session", sessionID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
