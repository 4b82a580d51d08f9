// Package backend is the typed HTTP client for the SubTrack backend
// API. Every call is one synchronous request/response cycle: errors are
// mapped onto a small taxonomy and handed back to the caller, nothing
// is retried here.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the current session bearer token. The token file
// store satisfies this.
type TokenSource interface {
	Load() (string, error)
}

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// New builds a client for baseURL, reading bearer tokens from tokens.
func New(baseURL string, tokens TokenSource, options ...func(*Client)) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     slog.Default(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) func(*Client) {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) func(*Client) {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(log *slog.Logger) func(*Client) {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// errorBody is the backend's failure payload shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// do runs one request. authorized attaches the stored bearer token and
// fails fast with ErrNotAuthenticated when none is available. out, when
// non-nil, receives the decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path string, authorized bool, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authorized {
		token, err := c.tokens.Load()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UnexpectedError{Status: resp.StatusCode, Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// doJSON marshals body and runs a JSON request.
func (c *Client) doJSON(ctx context.Context, method, path string, authorized bool, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, authorized, "application/json", strings.NewReader(string(raw)), out)
}

// mapError converts a failure response into the client taxonomy.
func (c *Client) mapError(resp *http.Response) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &eb)
	if eb.Detail == "" {
		eb.Detail = strings.TrimSpace(string(raw))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, eb.Detail)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &ValidationError{Status: resp.StatusCode, Detail: eb.Detail}
	default:
		return &UnexpectedError{Status: resp.StatusCode, Detail: eb.Detail}
	}
}
