package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"reelfeed/internal/server"
)

// Client talks to a running feed server over its HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the configured bind address. Wildcard binds are
// dialed on loopback.
func New(bind string) (*Client, error) {
	host, port, err := net.SplitHostPort(bind)
	if err != nil {
		return nil, fmt.Errorf("parse bind address %q: %w", bind, err)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return &Client{
		baseURL: fmt.Sprintf("http://%s", net.JoinHostPort(host, port)),
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// BaseURL reports the resolved server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status fetches runtime information from the server.
func (c *Client) Status(ctx context.Context) (*server.StatusResponse, error) {
	var status server.StatusResponse
	if err := c.call(ctx, http.MethodGet, "/api/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Stop asks the server to shut down gracefully.
func (c *Client) Stop(ctx context.Context) (string, error) {
	var msg server.MessageResponse
	if err := c.call(ctx, http.MethodPost, "/shutdown", &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// Reindex asks the server to rescan the media root.
func (c *Client) Reindex(ctx context.Context) (string, error) {
	var msg server.MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/reindex", &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (c *Client) call(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contact feed server at %s: %w", c.baseURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&payload); err == nil && payload.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, payload.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
