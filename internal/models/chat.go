package models

// Roles a chat message can carry. "model" matches the Gemini role label so the
// client sequence maps onto provider turns without renaming.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in a conversation. IDs are client-generated and
// unique within one page/session; the ordered message slice is the entire
// conversation state.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to POST /api/chat. Messages must be
// non-empty; the last element is the new user turn, everything before it is
// history.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}
