// Package rooms is a thin client for the external video-room provider. The
// provider is an opaque collaborator with a simple create/get/delete
// contract; nothing here interprets its internals.
package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hirestack/go-interview-server/internal/errors"
)

const defaultRequestTimeout = 15 * time.Second

// Room is a provisioned video room for one interview session
type Room struct {
	URL             string        `json:"roomUrl"`
	Name            string        `json:"roomName"`
	Token           string        `json:"token"`
	ExpiresAt       time.Time     `json:"expiresAt"`
	EnableRecording bool          `json:"enableRecording"`
	MaxDuration     time.Duration `json:"maxDuration"`
}

type roomResponse struct {
	URL                string `json:"url"`
	Name               string `json:"name"`
	Token              string `json:"token"`
	ExpiresAtUnix      int64  `json:"expires_at"`
	EnableRecording    bool   `json:"enable_recording"`
	MaxDurationSeconds int64  `json:"max_duration_seconds"`
}

func (r roomResponse) toRoom() *Room {
	return &Room{
		URL:             r.URL,
		Name:            r.Name,
		Token:           r.Token,
		ExpiresAt:       time.Unix(r.ExpiresAtUnix, 0),
		EnableRecording: r.EnableRecording,
		MaxDuration:     time.Duration(r.MaxDurationSeconds) * time.Second,
	}
}

// Client talks to the room provider's REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption defines a function type to modify the Client instance
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a room provider client
func NewClient(baseURL, apiKey string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// RoomName derives the provider-side room name for a session
func RoomName(sessionID string) string {
	return "interview-" + sessionID
}

// CreateOrGetRoom returns the session's room, creating it if the provider
// does not have it yet
func (c *Client) CreateOrGetRoom(ctx context.Context, sessionID string) (*Room, error) {
	room, err := c.GetRoom(ctx, RoomName(sessionID))
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, errors.ErrRoomNotFound) {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{"name": RoomName(sessionID)})
	if err != nil {
		return nil, fmt.Errorf("[CreateOrGetRoom] failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rooms", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("[CreateOrGetRoom] failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[CreateOrGetRoom] request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("[CreateOrGetRoom] provider returned status %d", resp.StatusCode)
	}

	var decoded roomResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("[CreateOrGetRoom] failed to decode response: %w", err)
	}
	return decoded.toRoom(), nil
}

// GetRoom fetches a room by provider-side name
func (c *Client) GetRoom(ctx context.Context, roomName string) (*Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rooms/"+roomName, nil)
	if err != nil {
		return nil, fmt.Errorf("[GetRoom] failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[GetRoom] request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.ErrRoomNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("[GetRoom] provider returned status %d", resp.StatusCode)
	}

	var decoded roomResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("[GetRoom] failed to decode response: %w", err)
	}
	return decoded.toRoom(), nil
}

// DeleteRoom removes a room; it reports whether the provider actually had it
func (c *Client) DeleteRoom(ctx context.Context, roomName string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/rooms/"+roomName, nil)
	if err != nil {
		return false, fmt.Errorf("[DeleteRoom] failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("[DeleteRoom] request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("[DeleteRoom] provider returned status %d", resp.StatusCode)
	}
	return true, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
