// ABOUTME: Shared HTTP client for the training platform REST API.
// ABOUTME: Fixed base URL, timeout, and JSON headers; no retries, no caching.
package api

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

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 5 * time.Second

	maxErrorBody = 64 << 10
)

// Options configures a Client.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	DeviceID string
	Logger   *log.Logger

	// HTTPClient overrides the underlying client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client issues JSON requests against relative API paths.
type Client struct {
	baseURL  string
	deviceID string
	http     *http.Client
	logger   *log.Logger
}

// New builds a Client, filling in defaults for empty options.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL:  baseURL,
		deviceID: opts.DeviceID,
		http:     hc,
		logger:   logger,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, token, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, token, body, out)
}

// Delete issues a DELETE. out may be nil.
func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, out)
}

// Do performs one request. A nil out discards the response body.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return networkError(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
		"request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Status:  resp.StatusCode,
			Path:    path,
			Message: serverMessage(data, resp.StatusCode),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: empty body: %w", path, ErrMalformedResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrMalformedResponse)
	}
	return nil
}

func networkError(path string, err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Path: path, Message: "request timed out", Err: errors.Join(ErrTimeout, err)}
	}
	return &Error{Path: path, Message: "network error: " + err.Error(), Err: err}
}
