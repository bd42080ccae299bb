package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/prompt"
)

const configErrorBody = "AI chat is not configured on this server"

type ChatHandler struct {
	engine  chat.Engine
	data    profile.Data
	timeout time.Duration
}

// NewChatHandler wires the chat endpoint. engine may be nil when no provider
// credential is configured; requests are then rejected before any provider
// call is attempted.
func NewChatHandler(engine chat.Engine, data profile.Data, timeout time.Duration) *ChatHandler {
	return &ChatHandler{
		engine:  engine,
		data:    data,
		timeout: timeout,
	}
}

// Ask handles POST /api/chat: the last message is the new user turn, every
// prior message is history. The answer is relayed as raw text chunks with no
// framing; once streaming has begun, a failure simply terminates the
// connection.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "At least one message is required", r))
		return
	}

	if h.engine == nil {
		log.Println("chat request rejected: no provider credential configured")
		http.Error(w, configErrorBody, http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	last := req.Messages[len(req.Messages)-1]
	history := req.Messages[:len(req.Messages)-1]

	// Rebuilt on every call so the grounding always reflects current data.
	systemPrompt := prompt.Build(h.data)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, _ := w.(http.Flusher)
	started := false

	err := h.engine.Stream(ctx, systemPrompt, history, last.Content, func(chunk string) error {
		started = true
		if _, werr := io.WriteString(w, chunk); werr != nil {
			return werr
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		log.Printf("chat stream failed: %v", err)
		if !started {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		// Mid-stream failures terminate the connection without a structured
		// error body; the client treats the aborted stream as a failure.
		return
	}
}
