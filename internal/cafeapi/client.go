// Package cafeapi is the HTTP client for the remote cafe API. Every piece
// of persistent state lives behind that API; this client translates its
// status-code conventions into typed errors and carries the caller's
// context so an abandoned page request aborts the upstream call.
package cafeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config captures the client settings. Client may be injected for tests.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client issues REST calls to the cafe API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient builds a cafe API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cafe API base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, hc: hc}, nil
}

// do issues a request and returns the raw response. token, when non-empty,
// is sent verbatim in the Authorization header (the API does not use a
// Bearer-prefixed scheme). Context cancellation is propagated unchanged so
// callers can distinguish an aborted page request from a transport failure.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// decodeBody decodes the response body into dst and closes it.
func decodeBody(resp *http.Response, dst any) error {
	defer closeBody(resp)
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// closeBody drains and closes the response body so the underlying
// connection can be reused.
func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
