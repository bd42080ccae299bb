// Package client owns the conversation state for one chat session: it sends
// the full message history to the chat endpoint, consumes the streamed answer
// incrementally, and implements the retry and cancellation policy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"portfolio-backend/internal/models"
)

const (
	// Transport failures with zero bytes received are retried this many extra
	// times before giving up.
	extraRetries      = 2
	defaultRetryDelay = time.Second

	fallbackText    = "Sorry, I couldn't answer that right now. Please try again."
	unavailableText = "The assistant is temporarily unavailable. Please try again later."
)

type turnResult int

const (
	turnOK turnResult = iota
	turnTransport  // request failed before any response arrived
	turnServer     // non-200 status
	turnStream     // response body died mid-read
	turnCanceled   // aborted by the user
)

// Client holds the ordered message sequence (append-only except Reset), a
// loading flag guarding against concurrent submits, the pending input text,
// and the cancellation handle for the active request. At most one request is
// in flight at a time.
type Client struct {
	endpoint   string
	httpClient *http.Client
	retryDelay time.Duration

	mu       sync.Mutex
	messages []models.Message
	loading  bool
	input    string
	cancel   context.CancelFunc

	// OnChunk is invoked with each decoded text increment, in emission order.
	OnChunk func(chunk string)
	// OnUpdate is invoked with a snapshot of the sequence after every change.
	OnUpdate func(messages []models.Message)
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		retryDelay: defaultRetryDelay,
	}
}

// Messages returns a copy of the conversation in insertion order.
func (c *Client) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Client) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

func (c *Client) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Reset clears the conversation entirely. It does not cancel an in-flight
// request.
func (c *Client) Reset() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
	c.notify()
}

// Abort cancels the in-flight request, if any. An aborted turn is a silent
// no-op: no fallback message is appended and loading is cleared.
func (c *Client) Abort() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Submit sends text as a new user turn and blocks until the turn succeeds,
// fails, or is aborted. Blank text, or a request already in flight, is a
// no-op.
func (c *Client) Submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.input = ""

	userID := strconv.FormatInt(time.Now().UnixNano(), 10)
	c.messages = append(c.messages, models.Message{ID: userID, Role: models.RoleUser, Content: text})

	payload := make([]models.Message, len(c.messages))
	copy(payload, c.messages)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	c.notify()

	// Loading is cleared on every exit path, including panics in hooks.
	defer func() {
		cancel()
		c.mu.Lock()
		c.loading = false
		c.cancel = nil
		c.mu.Unlock()
		c.notify()
	}()

	// The model reply reuses the user id with a suffix so the two keys cannot
	// collide even within one clock tick.
	c.run(ctx, payload, userID+"-reply")
}

// run is the bounded retry loop: the same payload is resubmitted for transport
// failures only, with a fixed delay between attempts.
func (c *Client) run(ctx context.Context, payload []models.Message, replyID string) {
	var status int
	for attempt := 0; ; attempt++ {
		result, st := c.attempt(ctx, payload, replyID)
		status = st

		if result == turnOK || result == turnCanceled {
			return
		}
		if result == turnTransport && attempt < extraRetries {
			select {
			case <-time.After(c.retryDelay):
				continue
			case <-ctx.Done():
				return
			}
		}
		break
	}

	// A partial answer that already rendered stays visible; the connection
	// just ended early.
	if c.hasMessage(replyID) {
		return
	}

	text := fallbackText
	if status == http.StatusInternalServerError {
		text = unavailableText
	}
	c.append(models.Message{ID: replyID, Role: models.RoleModel, Content: text})
}

func (c *Client) attempt(ctx context.Context, payload []models.Message, replyID string) (turnResult, int) {
	body, err := json.Marshal(models.ChatRequest{Messages: payload})
	if err != nil {
		return turnStream, 0
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return turnTransport, 0
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return turnCanceled, 0
		}
		return turnTransport, 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return turnServer, resp.StatusCode
	}

	return c.consume(ctx, resp.Body, replyID), resp.StatusCode
}

// consume reads the response body incrementally. Chunks are a continuous byte
// stream: a multi-byte rune split across reads is held back until its
// remaining bytes arrive, and any held bytes are flushed at end of stream.
func (c *Client) consume(ctx context.Context, body io.Reader, replyID string) turnResult {
	buf := make([]byte, 4096)
	var carry []byte

	for {
		n, err := body.Read(buf)
		if n > 0 {
			carry = append(carry, buf[:n]...)
			cut := completeRuneLen(carry)
			if cut > 0 {
				c.appendChunk(replyID, string(carry[:cut]))
				carry = append(carry[:0], carry[cut:]...)
			}
		}
		if err == io.EOF {
			if len(carry) > 0 {
				c.appendChunk(replyID, string(carry))
			}
			return turnOK
		}
		if err != nil {
			if ctx.Err() != nil {
				return turnCanceled
			}
			return turnStream
		}
	}
}

// appendChunk reconciles one increment into the sequence: the first chunk
// creates the model message, later chunks grow it in place, matched by id.
func (c *Client) appendChunk(id, text string) {
	c.mu.Lock()
	found := false
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content += text
			found = true
			break
		}
	}
	if !found {
		c.messages = append(c.messages, models.Message{ID: id, Role: models.RoleModel, Content: text})
	}
	c.mu.Unlock()

	if c.OnChunk != nil {
		c.OnChunk(text)
	}
	c.notify()
}

func (c *Client) append(msg models.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
	c.notify()
}

func (c *Client) hasMessage(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (c *Client) notify() {
	if c.OnUpdate != nil {
		c.OnUpdate(c.Messages())
	}
}

// completeRuneLen returns the length of the longest prefix of b ending on a
// complete UTF-8 rune. Bytes past it belong to a rune split across chunks.
func completeRuneLen(b []byte) int {
	for i := len(b) - 1; i >= 0 && len(b)-i <= utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}
