// ABOUTME: HTTP transport core for the Folk REST API
// ABOUTME: Bearer auth, one-time session init, error classification, DELETE special case
package folk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Folk REST API root.
	DefaultBaseURL = "https://api.folk.app/v1"

	defaultTimeout = 30 * time.Second
	userAgent      = "folk-mcp/0.1.0"
)

// Options configure a Client.
type Options struct {
	// APIKey is the Folk bearer token. May be empty at construction; the
	// first request fails with ErrNoAPIKey.
	APIKey string
	// BaseURL overrides the API root, mainly for tests.
	BaseURL string
	// Timeout bounds every request uniformly.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client talks to the Folk REST API. All methods are safe for concurrent
// use; nothing is cached between calls.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	logger  zerolog.Logger

	initOnce sync.Once
	session  *http.Client
}

// New builds a client. No network I/O happens here.
func New(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimSuffix(base, "/"),
		timeout: timeout,
		logger:  opts.Logger.With().Str("component", "folk").Logger(),
	}
}

// httpSession returns the shared HTTP client, created on first use.
func (c *Client) httpSession() *http.Client {
	c.initOnce.Do(func() {
		c.session = &http.Client{Timeout: c.timeout}
	})
	return c.session
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
}

// request issues one API call. body (when non-nil) is JSON-encoded; the
// response body (when out is non-nil) is JSON-decoded into out.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out)
}

// deleteNoBody issues a DELETE with no payload. The API rejects bodiless
// DELETE requests that advertise a Content-Type, so this path never sets one.
func (c *Client) deleteNoBody(ctx context.Context, path string) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setCommonHeaders(req)

	return c.send(req, nil)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpSession().Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("transport failure")
		return networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode >= 400 {
		msg, details := errorMessage(raw)
		c.logger.Debug().Int("status", resp.StatusCode).Str("method", req.Method).Str("path", req.URL.Path).Msg("api error")
		return &APIError{Status: resp.StatusCode, Message: msg, Details: details}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Response envelopes. List endpoints wrap items and pagination in a data
// object; single-entity endpoints wrap the entity directly.

type listEnvelope[T any] struct {
	Data struct {
		Items      []T        `json:"items"`
		Pagination Pagination `json:"pagination"`
	} `json:"data"`
	Deprecations []string `json:"deprecations"`
}

type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

// normalizer is implemented by entity types that need empty-list cleanup
// after decoding.
type normalizer interface{ normalize() }

func listPage[T any](ctx context.Context, c *Client, path string, opts ListOptions) (*Page[T], error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	var envelope listEnvelope[T]
	if err := c.request(ctx, http.MethodGet, path, q, nil, &envelope); err != nil {
		return nil, err
	}
	items := ensure(envelope.Data.Items)
	for i := range items {
		if n, ok := any(&items[i]).(normalizer); ok {
			n.normalize()
		}
	}
	return &Page[T]{
		Items:        items,
		NextLink:     envelope.Data.Pagination.NextLink,
		Deprecations: envelope.Deprecations,
	}, nil
}

func getItem[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var envelope itemEnvelope[T]
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &envelope); err != nil {
		return nil, err
	}
	item := envelope.Data
	if n, ok := any(&item).(normalizer); ok {
		n.normalize()
	}
	return &item, nil
}

func createItem[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var envelope itemEnvelope[T]
	if err := c.request(ctx, http.MethodPost, path, nil, body, &envelope); err != nil {
		return nil, err
	}
	item := envelope.Data
	if n, ok := any(&item).(normalizer); ok {
		n.normalize()
	}
	return &item, nil
}

func updateItem[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var envelope itemEnvelope[T]
	if err := c.request(ctx, http.MethodPatch, path, nil, body, &envelope); err != nil {
		return nil, err
	}
	item := envelope.Data
	if n, ok := any(&item).(normalizer); ok {
		n.normalize()
	}
	return &item, nil
}
