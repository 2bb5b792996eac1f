package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPAPI talks to the chat routes with a bearer token.
type HTTPAPI struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPAPI(baseURL, token string) *HTTPAPI {
	return &HTTPAPI{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

var _ API = (*HTTPAPI)(nil)

type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func (a *HTTPAPI) Conversations(ctx context.Context) ([]Conversation, error) {
	var env listEnvelope[Conversation]
	if err := a.do(ctx, http.MethodGet, "/api/chat/conversations", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (a *HTTPAPI) Messages(ctx context.Context, conversationID uint, afterID uint) ([]Message, error) {
	path := fmt.Sprintf("/api/chat/conversations/%d/messages", conversationID)
	if afterID > 0 {
		path += "?after=" + strconv.FormatUint(uint64(afterID), 10)
	}

	var env listEnvelope[Message]
	if err := a.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (a *HTTPAPI) BookingContext(ctx context.Context, conversationID uint) (*BookingSummary, error) {
	path := fmt.Sprintf("/api/chat/conversations/%d", conversationID)

	var resp struct {
		BookingRequest *BookingSummary `json:"booking_request"`
	}
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.BookingRequest, nil
}

func (a *HTTPAPI) Send(ctx context.Context, conversationID uint, body string) (Message, error) {
	path := fmt.Sprintf("/api/chat/conversations/%d/messages", conversationID)
	payload := map[string]string{"body": body}

	var msg Message
	if err := a.do(ctx, http.MethodPost, path, payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (a *HTTPAPI) do(ctx context.Context, method, path string, payload, dest any) error {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("chat api: %s %s: status %d", method, path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
