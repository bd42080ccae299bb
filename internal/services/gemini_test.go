package services

import (
	"testing"

	"github.com/google/generative-ai-go/genai"

	"portfolio-backend/internal/models"
)

func TestToGenaiHistory_RoleMappingAndOrder(t *testing.T) {
	history := []models.Message{
		{ID: "1", Role: models.RoleUser, Content: "hello"},
		{ID: "2", Role: models.RoleModel, Content: "hi there"},
		{ID: "3", Role: "weird", Content: "fallback"},
	}

	out := toGenaiHistory(history)

	if len(out) != 3 {
		t.Fatalf("Expected 3 turns, got %d", len(out))
	}

	expected := []struct {
		role    string
		content string
	}{
		{"user", "hello"},
		{"model", "hi there"},
		{"user", "fallback"},
	}

	for i, want := range expected {
		if out[i].Role != want.role {
			t.Errorf("Turn %d: expected role %q, got %q", i, want.role, out[i].Role)
		}
		if len(out[i].Parts) != 1 {
			t.Fatalf("Turn %d: expected a single text part, got %d", i, len(out[i].Parts))
		}
		if text, ok := out[i].Parts[0].(genai.Text); !ok || string(text) != want.content {
			t.Errorf("Turn %d: expected text part %q, got %v", i, want.content, out[i].Parts[0])
		}
	}
}

func TestToGenaiHistory_Empty(t *testing.T) {
	out := toGenaiHistory(nil)
	if len(out) != 0 {
		t.Errorf("Expected empty history, got %d turns", len(out))
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Hel"), genai.Text("lo")},
				},
			},
			{Content: nil},
		},
	}

	if got := extractText(resp); got != "Hello" {
		t.Errorf("Expected %q, got %q", "Hello", got)
	}
}
