// Package chat defines the boundary between the HTTP layer and the generative
// AI provider.
package chat

import (
	"context"

	"portfolio-backend/internal/models"
)

// Engine produces a streamed answer for one conversational turn. history holds
// every prior message in order, message is the new user turn, and emit is
// called once per non-empty text increment in emission order. A non-nil error
// from emit aborts the stream and is returned unchanged.
type Engine interface {
	Stream(ctx context.Context, systemPrompt string, history []models.Message, message string, emit func(chunk string) error) error
}
