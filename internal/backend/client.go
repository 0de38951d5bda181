// Package backend is the JSON client for the club's REST API. The API is an
// external service; this client only adds bearer auth, error extraction and
// the session-expiry interception the dashboard relies on.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client talks to the REST backend. The token is read once at construction,
// so a client built before a token rotation keeps using the old credential
// until its requests finish.
type Client struct {
	baseURL          string
	token            string
	http             *http.Client
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionExpiredFunc sets a callback invoked whenever the backend answers
// 401, before the error is returned to the caller. Callers constructed
// without one get ErrSessionExpired and nothing else happens.
func WithSessionExpiredFunc(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New creates a client for the given backend origin carrying the given
// session token. An empty token is sent as an empty bearer credential; the
// backend rejects it with 401, which drives the normal expiry path.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Always sent, even with an empty token; the backend decides.
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		// Keep any server message reachable: login surfaces it inline,
		// everything else just checks for ErrSessionExpired.
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired,
			&APIError{Status: resp.StatusCode, Message: decodeErrorBody(data)})
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Message: decodeErrorBody(data)}
	}

	return data, nil
}
