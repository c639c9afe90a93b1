// Package rpcclient sends parameter records to the assembler and workspace
// services over JSON-RPC 2.0. Calls are made once; retrying is left to the
// caller.
package rpcclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json2 "github.com/gorilla/rpc/v2/json2"

	"github.com/kbaseapps/assembly-params/internal/logger"
)

const defaultTimeout = 30 * time.Second

// StatusError reports a non-2xx response that carried no JSON-RPC error.
type StatusError struct {
	Method string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: received status code %d", e.Method, e.Code)
}

// Client posts JSON-RPC requests to one service endpoint.
type Client struct {
	url   *url.URL
	token string
	http  *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds each call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New returns a client for the service at rawURL. The token, when set, is
// sent verbatim in the Authorization header.
func New(rawURL, token string, opts ...Option) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse service url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("service url %q must be http or https", rawURL)
	}
	c := &Client{url: u, token: token, http: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Call invokes method with params passed positionally and decodes the
// result into reply. Service-side failures come back as *json2.Error.
func (c *Client) Call(ctx context.Context, method string, params []any, reply any) error {
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	log := logger.With("method", method, "url", c.url.Redacted())
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: issue request: %w", method, err)
	}
	defer closeBody(resp.Body)
	log.Debugw("rpc response", "status", resp.StatusCode, "elapsed", time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Services report failures as a JSON-RPC error with a 500 status.
		var rpcErr *json2.Error
		if err := json2.DecodeClientResponse(bytes.NewReader(raw), &struct{}{}); errors.As(err, &rpcErr) {
			return fmt.Errorf("%s: %w", method, rpcErr)
		}
		return &StatusError{Method: method, Code: resp.StatusCode}
	}
	if err := json2.DecodeClientResponse(bytes.NewReader(raw), reply); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	return nil
}

// callOne handles the service convention of wrapping a single return value
// in a one-element result list.
func callOne[T any](ctx context.Context, c *Client, method string, param any) (*T, error) {
	var out []T
	if err := c.Call(ctx, method, []any{param}, &out); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%s: expected 1 result, got %d", method, len(out))
	}
	return &out[0], nil
}

func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
