// Package gateway holds the HTTP clients the order service uses to read
// data from its sibling services. The siblings are opaque collaborators:
// responses are consumed as snapshots, never shared references.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// envelope mirrors the response wrapper every foodcourt service emits.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Client is a thin JSON GET client with a bounded per-request timeout.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return zero, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("gateway: %s returned %d", path, res.StatusCode)
	}
	var env envelope[T]
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return zero, err
	}
	return env.Data, nil
}
