package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// maxHistoryTurns caps how much history is forwarded upstream after the
// bootstrap pair. Stored history is never trimmed; only the outbound
// request is windowed, so very long sessions stay inside the model's
// context limit.
const maxHistoryTurns = 40

// server holds the shared pieces every handler needs. The store is the
// only mutable member; resume and persona are immutable after startup.
type server struct {
	store   *SessionStore
	llm     *GeminiClient
	resume  *ResumeData
	persona Persona
	appEnv  string
}

func (s *server) production() bool {
	return s.appEnv == "production"
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// outboundTurns returns the turns to forward upstream: the bootstrap pair
// plus the most recent window of the rest. The cut is advanced to the
// next user turn so the window never opens on a model turn whose user
// turn was trimmed away.
func outboundTurns(history []Turn) []Turn {
	if len(history) <= 2+maxHistoryTurns {
		return history
	}
	start := len(history) - maxHistoryTurns
	for start < len(history) && history[start].Role != roleUser {
		start++
	}
	out := make([]Turn, 0, 2+len(history)-start)
	out = append(out, history[:2]...)
	out = append(out, history[start:]...)
	return out
}

// handleChat is the proxy core: validate, resolve the session, forward the
// conversation to Gemini, record the reply.
func (s *server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	now := time.Now()
	conv, created := s.store.GetOrCreate(sessionID, func() []Turn {
		// Prompt built at first-turn time so the date/time in it
		// reflects when the session actually began.
		return bootstrapTurns(s.persona, s.resume, now)
	})
	if created {
		log.Printf("Chat session created: %s (%d active)", sessionID, s.store.Len())
	}

	reply, err := conv.Exchange(message, func(history []Turn) (string, error) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
		defer cancel()
		return s.llm.Generate(ctx, outboundTurns(history))
	})
	if err != nil {
		s.renderChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  reply,
		"sessionId": sessionID,
		"timestamp": now.UTC().Format(time.RFC3339),
	})
}

// renderChatError translates upstream failures into the client-facing
// taxonomy. Raw upstream detail is only exposed outside production.
func (s *server) renderChatError(c *gin.Context, err error) {
	log.Printf("Chat error: %v", err)

	switch errors.Cause(err) {
	case errUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
	case errQuotaExceeded:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "API quota exceeded. Please try again later."})
	default:
		body := gin.H{"error": "Something went wrong. Please try again later."}
		if !s.production() {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func (s *server) handleHealth(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": now.UTC().Format(time.RFC3339),
		"date":      formatDate(now),
		"time":      formatTime(now),
	})
}

func (s *server) handleDeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if !s.store.Delete(sessionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
		return
	}
	log.Printf("Chat session cleared: %s", sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Chat session cleared successfully"})
}

// handleListSessions is a debugging aid and stays off in production.
func (s *server) handleListSessions(c *gin.Context) {
	if s.production() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activeSessions": s.store.IDs(),
		"count":          s.store.Len(),
	})
}
