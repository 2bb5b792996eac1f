// Package chatclient implements the polling companion of the chat API:
// it refreshes the caller's threads on a fixed tick and keeps messages in a
// single id-keyed cache fed by both the poll and the send acknowledgement,
// merged last-writer-wins on the server-assigned id.
package chatclient

import (
	"context"
	"sort"
	"sync"
	"time"
)

// PollInterval is the refresh tick. The chat is near-real-time by polling,
// not by push.
const PollInterval = 8 * time.Second

type Conversation struct {
	ID            uint      `json:"id"`
	ClientID      uint      `json:"client_id"`
	ProviderID    uint      `json:"provider_id"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type Message struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingSummary is the booking a thread is about, when one is linked.
type BookingSummary struct {
	ID        uint      `json:"id"`
	EventDate time.Time `json:"event_date"`
	Status    string    `json:"status"`
}

// API is the server surface the client polls. HTTPAPI implements it over
// the JSON routes; tests substitute their own.
type API interface {
	Conversations(ctx context.Context) ([]Conversation, error)
	Messages(ctx context.Context, conversationID uint, afterID uint) ([]Message, error)
	BookingContext(ctx context.Context, conversationID uint) (*BookingSummary, error)
	Send(ctx context.Context, conversationID uint, body string) (Message, error)
}

type Client struct {
	api API

	mu            sync.Mutex
	conversations []Conversation
	active        uint
	byID          map[uint]Message
	lastID        uint
	booking       *BookingSummary
}

func New(api API) *Client {
	return &Client{
		api:  api,
		byID: make(map[uint]Message),
	}
}

// Run polls until ctx is cancelled. One refresh happens immediately so the
// first paint is not an empty 8-second wait.
func (c *Client) Run(ctx context.Context) {
	c.Refresh(ctx)

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

// Refresh pulls the thread list and, when a thread is open, its new
// messages. A failed call is skipped silently: the previous state stays on
// screen and the next tick tries again.
func (c *Client) Refresh(ctx context.Context) {
	if conversations, err := c.api.Conversations(ctx); err == nil {
		c.mu.Lock()
		c.conversations = conversations
		c.mu.Unlock()
	}

	c.mu.Lock()
	active := c.active
	after := c.lastID
	c.mu.Unlock()

	if active == 0 {
		return
	}

	messages, err := c.api.Messages(ctx, active, after)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != active {
		// The user switched threads mid-flight; this batch is stale.
		return
	}
	for _, m := range messages {
		c.merge(m)
	}
}

// SetActive opens a thread and drops the cache of the previous one.
func (c *Client) SetActive(conversationID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == conversationID {
		return
	}

	c.active = conversationID
	c.byID = make(map[uint]Message)
	c.lastID = 0
	c.booking = nil
}

// Open switches to a thread and fetches its messages and booking context
// right away instead of waiting for the next tick.
func (c *Client) Open(ctx context.Context, conversationID uint) {
	c.SetActive(conversationID)
	c.Refresh(ctx)

	if summary, err := c.api.BookingContext(ctx, conversationID); err == nil {
		c.mu.Lock()
		if c.active == conversationID {
			c.booking = summary
		}
		c.mu.Unlock()
	}
}

// Booking returns the linked booking of the open thread, if any.
func (c *Client) Booking() *BookingSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.booking
}

func (c *Client) Conversations() []Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Conversation, len(c.conversations))
	copy(out, c.conversations)
	return out
}

// Messages returns the open thread in display order, sorted by id.
func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, 0, len(c.byID))
	for _, m := range c.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Send posts the message and appends the server's copy to the cache as soon
// as the acknowledgement arrives. The entry is keyed by the server-assigned
// id, so there is a visible gap between submitting and the message showing
// up; a failed send leaves the cache untouched and returns the error.
func (c *Client) Send(ctx context.Context, body string) error {
	c.mu.Lock()
	active := c.active
	c.mu.Unlock()

	msg, err := c.api.Send(ctx, active, body)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.active == active {
		c.merge(msg)
	}
	c.mu.Unlock()

	// The thread list reorders on every message; refetch it so previews
	// and ordering catch up before the next tick.
	if conversations, listErr := c.api.Conversations(ctx); listErr == nil {
		c.mu.Lock()
		c.conversations = conversations
		c.mu.Unlock()
	}

	return nil
}

// merge is last-writer-wins on the message id: a refetched copy replaces
// whatever the cache held.
func (c *Client) merge(m Message) {
	c.byID[m.ID] = m
	if m.ID > c.lastID {
		c.lastID = m.ID
	}
}
