// Package api is the HTTP transport wrapper for the notes backend.
// Every remote call flows through Client: it attaches the session cookie,
// encodes and decodes JSON bodies, and normalizes failures into the
// package's error types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/dkrasnov/notable/internal/logging"
	"github.com/google/uuid"
)

// Client issues JSON requests against a single base URL. The cookie jar
// keeps the session cookie the server sets on sign-in, so credentials are
// carried on every subsequent call.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New constructs a Client for the given base URL. A zero timeout leaves
// the transport's default in place.
func New(baseURL string, timeout time.Duration, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

// BaseURL returns the configured endpoint without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrNoConnection)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return c.responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// responseError extracts the server-supplied message, when there is one,
// from a {"message": "..."} body.
func (c *Client) responseError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &Error{Status: resp.StatusCode, Message: payload.Message}
}
