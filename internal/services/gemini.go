package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"portfolio-backend/internal/models"
)

// GeminiService implements chat.Engine on the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Stream runs one turn against Gemini and forwards text increments to emit as
// they arrive. The context document is installed as the system instruction for
// this call only; nothing is cached between calls.
func (s *GeminiService) Stream(ctx context.Context, systemPrompt string, history []models.Message, message string, emit func(chunk string) error) error {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	session := model.StartChat()
	session.History = toGenaiHistory(history)

	iter := session.SendMessageStream(ctx, genai.Text(message))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Gemini stream error: %w", err)
		}

		if chunk := extractText(resp); chunk != "" {
			if err := emit(chunk); err != nil {
				return err
			}
		}
	}
}

// toGenaiHistory converts prior turns into provider content, preserving order.
// The client role labels already match Gemini's ("user"/"model"), but anything
// unrecognized is treated as a user turn rather than dropped.
func toGenaiHistory(history []models.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := models.RoleUser
		if m.Role == models.RoleModel {
			role = models.RoleModel
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
