package chatclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeAPI struct {
	mu            sync.Mutex
	conversations []Conversation
	messages      map[uint][]Message
	bookings      map[uint]*BookingSummary
	failPolls     bool

	nextID    uint
	sendGate  chan struct{}
	sendError error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		messages: make(map[uint][]Message),
		bookings: make(map[uint]*BookingSummary),
		nextID:   100,
	}
}

func (f *fakeAPI) Conversations(ctx context.Context) ([]Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPolls {
		return nil, errors.New("poll failed")
	}
	return f.conversations, nil
}

func (f *fakeAPI) Messages(ctx context.Context, conversationID uint, afterID uint) ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPolls {
		return nil, errors.New("poll failed")
	}
	var out []Message
	for _, m := range f.messages[conversationID] {
		if m.ID > afterID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeAPI) BookingContext(ctx context.Context, conversationID uint) (*BookingSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPolls {
		return nil, errors.New("poll failed")
	}
	return f.bookings[conversationID], nil
}

func (f *fakeAPI) Send(ctx context.Context, conversationID uint, body string) (Message, error) {
	if f.sendGate != nil {
		<-f.sendGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendError != nil {
		return Message{}, f.sendError
	}

	f.nextID++
	msg := Message{
		ID:             f.nextID,
		ConversationID: conversationID,
		SenderID:       1,
		Body:           body,
		CreatedAt:      time.Now(),
	}
	f.messages[conversationID] = append(f.messages[conversationID], msg)

	// The server bumps the thread's ordering key on every message and
	// serves the list most-recent first.
	for i, conv := range f.conversations {
		if conv.ID == conversationID {
			conv.LastMessageAt = msg.CreatedAt
			f.conversations = append(f.conversations[:i], f.conversations[i+1:]...)
			f.conversations = append([]Conversation{conv}, f.conversations...)
			break
		}
	}

	return msg, nil
}

func (f *fakeAPI) put(conversationID uint, msg Message) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, m := range f.messages[conversationID] {
		if m.ID == msg.ID {
			f.messages[conversationID][i] = msg
			return
		}
	}
	f.messages[conversationID] = append(f.messages[conversationID], msg)
}

func TestPollInterval(t *testing.T) {
	if PollInterval != 8*time.Second {
		t.Fatalf("PollInterval = %v, want 8s", PollInterval)
	}
}

func TestRefreshMergesByID(t *testing.T) {
	api := newFakeAPI()
	api.conversations = []Conversation{{ID: 1}}
	api.put(1, Message{ID: 10, ConversationID: 1, Body: "salut"})
	api.put(1, Message{ID: 11, ConversationID: 1, Body: "bună"})

	c := New(api)
	c.SetActive(1)
	c.Refresh(context.Background())

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].ID != 10 || msgs[1].ID != 11 {
		t.Fatalf("messages out of order: %+v", msgs)
	}

	if got := c.Conversations(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("conversations = %+v", got)
	}
}

func TestRefreshLastWriterWins(t *testing.T) {
	api := newFakeAPI()
	api.put(1, Message{ID: 10, ConversationID: 1, Body: "original"})

	c := New(api)
	c.SetActive(1)
	c.Refresh(context.Background())

	// The server re-serves id 10 with a different body; the cached copy
	// must be replaced, not duplicated.
	api.mu.Lock()
	api.messages[1] = []Message{{ID: 10, ConversationID: 1, Body: "editat"}}
	api.mu.Unlock()

	c.mu.Lock()
	c.lastID = 0 // force a refetch of the same id
	c.mu.Unlock()

	c.Refresh(context.Background())

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Body != "editat" {
		t.Fatalf("body = %q, want the refetched copy", msgs[0].Body)
	}
}

func TestRefreshFailureKeepsState(t *testing.T) {
	api := newFakeAPI()
	api.conversations = []Conversation{{ID: 1}}
	api.put(1, Message{ID: 10, ConversationID: 1, Body: "salut"})

	c := New(api)
	c.SetActive(1)
	c.Refresh(context.Background())

	api.mu.Lock()
	api.failPolls = true
	api.mu.Unlock()

	c.Refresh(context.Background())

	if got := c.Messages(); len(got) != 1 || got[0].Body != "salut" {
		t.Fatalf("messages after failed poll = %+v", got)
	}
	if got := c.Conversations(); len(got) != 1 {
		t.Fatalf("conversations after failed poll = %+v", got)
	}
}

func TestSendAppendsServerCopyOnAck(t *testing.T) {
	api := newFakeAPI()
	api.sendGate = make(chan struct{})

	c := New(api)
	c.SetActive(1)

	done := make(chan error, 1)
	go func() { done <- c.Send(context.Background(), "pe drum") }()

	// The entry is keyed by the server id, so nothing shows while the
	// request is still in flight.
	time.Sleep(20 * time.Millisecond)
	if got := c.Messages(); len(got) != 0 {
		t.Fatalf("message visible before the server acknowledged: %+v", got)
	}

	close(api.sendGate)
	if err := <-done; err != nil {
		t.Fatalf("Send: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages after ack, want 1", len(msgs))
	}
	if msgs[0].ID == 0 || msgs[0].Body != "pe drum" {
		t.Fatalf("cache entry is not the server copy: %+v", msgs[0])
	}
}

func TestSendFailureLeavesCacheUntouched(t *testing.T) {
	api := newFakeAPI()
	api.sendError = errors.New("boom")

	c := New(api)
	c.SetActive(1)

	if err := c.Send(context.Background(), "pe drum"); err == nil {
		t.Fatal("expected send error")
	}

	if got := c.Messages(); len(got) != 0 {
		t.Fatalf("failed send left an entry behind: %+v", got)
	}
}

func TestSendRefreshesConversationOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	api := newFakeAPI()
	api.conversations = []Conversation{
		{ID: 1, LastMessageAt: base.Add(time.Hour)},
		{ID: 2, LastMessageAt: base},
	}

	c := New(api)
	c.SetActive(2)
	c.Refresh(context.Background())

	if got := c.Conversations(); got[0].ID != 1 {
		t.Fatalf("initial ordering = %+v", got)
	}

	if err := c.Send(context.Background(), "salut"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// Sending into thread 2 bumps it to the top, and the post-send refetch
	// must surface the new ordering without waiting for the next tick.
	got := c.Conversations()
	if got[0].ID != 2 {
		t.Fatalf("ordering after send = %+v, want thread 2 first", got)
	}
	if !got[0].LastMessageAt.After(base) {
		t.Fatalf("last_message_at not bumped: %+v", got[0])
	}
}

func TestOpenFetchesBookingContext(t *testing.T) {
	api := newFakeAPI()
	api.put(1, Message{ID: 10, ConversationID: 1, Body: "salut"})
	api.bookings[1] = &BookingSummary{ID: 4, Status: "pending"}

	c := New(api)
	c.Open(context.Background(), 1)

	if got := c.Messages(); len(got) != 1 {
		t.Fatalf("messages after open = %+v", got)
	}
	booking := c.Booking()
	if booking == nil || booking.ID != 4 {
		t.Fatalf("booking = %+v, want id 4", booking)
	}

	// A thread without a linked booking opens with none.
	c.Open(context.Background(), 2)
	if c.Booking() != nil {
		t.Fatalf("booking survived a thread switch")
	}
}

func TestSetActiveResetsCache(t *testing.T) {
	api := newFakeAPI()
	api.put(1, Message{ID: 10, ConversationID: 1, Body: "salut"})
	api.put(2, Message{ID: 20, ConversationID: 2, Body: "altceva"})

	c := New(api)
	c.SetActive(1)
	c.Refresh(context.Background())

	c.SetActive(2)
	if got := c.Messages(); len(got) != 0 {
		t.Fatalf("cache not dropped on switch: %+v", got)
	}

	c.Refresh(context.Background())
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].ID != 20 {
		t.Fatalf("messages after switch = %+v", msgs)
	}
}
