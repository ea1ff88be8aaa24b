// Package api is the gateway to the admin REST backend. It owns request
// plumbing (auth header, request IDs, logging), the tolerant response-envelope
// decoding, and the typed endpoint methods the screen controllers call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to every request. Returning
// the empty string sends the request unauthenticated.
type TokenSource func() string

type Client struct {
	base  *url.URL
	httpc *http.Client
	token TokenSource
	log   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		base:  u,
		httpc: &http.Client{Timeout: 15 * time.Second},
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do issues one request and returns the raw body of a 2xx response. Non-2xx
// responses are mapped to *Error; transport failures are wrapped as-is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	c.log.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(buf), "application/json")
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

// upload sends a single multipart request with the file under the given field
// name, matching what the backend's import endpoint expects.
func (c *Client) upload(ctx context.Context, path, field, filename string, r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType())
}

// fetchPage is the list entry point shared by every screen: one GET, then the
// tolerant envelope unwrap. Items is never nil, even on failure.
func fetchPage[T any](ctx context.Context, c *Client, path string, params url.Values) (Page[T], error) {
	raw, err := c.get(ctx, path, params)
	if err != nil {
		return Page[T]{Items: []T{}}, err
	}
	return decodePage[T](raw)
}

func fetchObject[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var zero T
	var raw []byte
	var err error
	if payload == nil && method == http.MethodGet {
		raw, err = c.get(ctx, path, nil)
	} else {
		raw, err = c.sendJSON(ctx, method, path, payload)
	}
	if err != nil {
		return zero, err
	}
	return decodeObject[T](raw)
}
