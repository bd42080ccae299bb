package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/profile"
)

// fakeEngine is a scriptable chat.Engine test double.
type fakeEngine struct {
	chunks    []string
	failAfter int // emit this many chunks, then fail; -1 means never fail
	err       error

	calls      int
	gotPrompt  string
	gotHistory []models.Message
	gotMessage string
}

func newFakeEngine(chunks ...string) *fakeEngine {
	return &fakeEngine{chunks: chunks, failAfter: -1}
}

func (f *fakeEngine) Stream(ctx context.Context, systemPrompt string, history []models.Message, message string, emit func(chunk string) error) error {
	f.calls++
	f.gotPrompt = systemPrompt
	f.gotHistory = history
	f.gotMessage = message

	for i, c := range f.chunks {
		if f.failAfter >= 0 && i == f.failAfter {
			return f.err
		}
		if err := emit(c); err != nil {
			return err
		}
	}
	if f.failAfter >= 0 && f.failAfter >= len(f.chunks) {
		return f.err
	}
	return nil
}

func testProfile() profile.Data {
	return profile.Data{
		Name:     "Test Owner",
		Headline: "Engineer",
		Bio:      "Bio.",
	}
}

func chatRequest(t *testing.T, messages []models.Message) *http.Request {
	t.Helper()
	body, err := json.Marshal(models.ChatRequest{Messages: messages})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChatHandler_StreamsChunksInOrder(t *testing.T) {
	engine := newFakeEngine("Hel", "lo, ", "world")
	h := NewChatHandler(engine, testProfile(), 30*time.Second)

	messages := []models.Message{
		{ID: "1", Role: models.RoleUser, Content: "first question"},
		{ID: "2", Role: models.RoleModel, Content: "first answer"},
		{ID: "3", Role: models.RoleUser, Content: "second question"},
	}

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, messages))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if got := rr.Body.String(); got != "Hello, world" {
		t.Errorf("Expected body %q, got %q", "Hello, world", got)
	}

	headers := map[string]string{
		"Content-Type":      "text/plain; charset=utf-8",
		"Cache-Control":     "no-cache",
		"X-Accel-Buffering": "no",
	}
	for key, want := range headers {
		if got := rr.Header().Get(key); got != want {
			t.Errorf("Expected header %s=%q, got %q", key, want, got)
		}
	}
}

func TestChatHandler_LastMessageIsNewTurn(t *testing.T) {
	engine := newFakeEngine("ok")
	h := NewChatHandler(engine, testProfile(), 30*time.Second)

	messages := []models.Message{
		{ID: "1", Role: models.RoleUser, Content: "q1"},
		{ID: "2", Role: models.RoleModel, Content: "a1"},
		{ID: "3", Role: models.RoleUser, Content: "q2"},
	}

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, messages))

	if engine.calls != 1 {
		t.Fatalf("Expected exactly one provider call, got %d", engine.calls)
	}
	if engine.gotMessage != "q2" {
		t.Errorf("Expected new turn %q, got %q", "q2", engine.gotMessage)
	}
	if len(engine.gotHistory) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(engine.gotHistory))
	}
	if engine.gotHistory[0].Content != "q1" || engine.gotHistory[1].Content != "a1" {
		t.Errorf("History order not preserved: %+v", engine.gotHistory)
	}
	if engine.gotHistory[0].Role != models.RoleUser || engine.gotHistory[1].Role != models.RoleModel {
		t.Errorf("History roles not preserved: %+v", engine.gotHistory)
	}
	if !strings.Contains(engine.gotPrompt, "Test Owner") {
		t.Error("Expected context document built from profile data")
	}
}

func TestChatHandler_SingleMessageHasEmptyHistory(t *testing.T) {
	engine := newFakeEngine("ok")
	h := NewChatHandler(engine, testProfile(), 30*time.Second)

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, []models.Message{{ID: "1", Role: models.RoleUser, Content: "only"}}))

	if engine.gotMessage != "only" {
		t.Errorf("Expected new turn %q, got %q", "only", engine.gotMessage)
	}
	if len(engine.gotHistory) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(engine.gotHistory))
	}
}

func TestChatHandler_MissingCredential(t *testing.T) {
	h := NewChatHandler(nil, testProfile(), 30*time.Second)

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, []models.Message{{ID: "1", Role: models.RoleUser, Content: "hi"}}))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), configErrorBody) {
		t.Errorf("Expected configuration error body, got %q", rr.Body.String())
	}
}

func TestChatHandler_InvalidInputSkipsProvider(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{not json"},
		{"empty messages", `{"messages":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := newFakeEngine("never")
			h := NewChatHandler(engine, testProfile(), 30*time.Second)

			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			h.Ask(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
			if engine.calls != 0 {
				t.Errorf("Expected no provider call, got %d", engine.calls)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Expected JSON error envelope: %v", err)
			}
			if resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
			}
		})
	}
}

func TestChatHandler_FailureBeforeStreaming(t *testing.T) {
	engine := newFakeEngine("never sent")
	engine.failAfter = 0
	engine.err = errors.New("provider exploded")
	h := NewChatHandler(engine, testProfile(), 30*time.Second)

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, []models.Message{{ID: "1", Role: models.RoleUser, Content: "hi"}}))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Internal Server Error") {
		t.Errorf("Expected generic error body, got %q", rr.Body.String())
	}
}

func TestChatHandler_MidStreamFailureTerminatesWithoutErrorBody(t *testing.T) {
	engine := newFakeEngine("partial ", "rest")
	engine.failAfter = 1
	engine.err = errors.New("stream died")
	h := NewChatHandler(engine, testProfile(), 30*time.Second)

	rr := httptest.NewRecorder()
	h.Ask(rr, chatRequest(t, []models.Message{{ID: "1", Role: models.RoleUser, Content: "hi"}}))

	// Streaming already started, so the status stays 200 and the body holds
	// only whatever was forwarded before the failure.
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if got := rr.Body.String(); got != "partial " {
		t.Errorf("Expected partial body %q, got %q", "partial ", got)
	}
}
