// Package api is the typed REST client for the HR backend. A low-level
// helper owns request building, bearer-token injection, and the mapping
// of transport, status, and decoding failures into errors; generic and
// per-resource clients are thin layers above it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies the current bearer token. It is consulted on
// every request, so a token obtained after the client was built is
// still picked up. An empty string means "send no Authorization header".
type TokenSource func() string

// Client is the low-level HTTP helper shared by all resource clients.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client, e.g. to set a
// request timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client for the backend at baseURL. token may be nil for
// a client that only calls unauthenticated endpoints.
func New(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a single request: one attempt, no retries. The body (if
// non-nil) is sent as JSON. On 2xx the raw response body is returned;
// all failure modes are mapped to errors as described in errors.go.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// send finishes a prepared request: attaches the bearer token, executes
// it, and maps the response. Used directly by multipart uploads.
func (c *Client) send(req *http.Request) ([]byte, int, error) {
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, resp.StatusCode, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := envelopeError(data); msg != "" {
			return nil, resp.StatusCode, &ServerError{Message: msg}
		}
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return data, resp.StatusCode, nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// envelopeError extracts the error message from an envelope body, or ""
// if the body is not an envelope carrying one.
func envelopeError(data []byte) string {
	var env struct {
		Success bool    `json:"success"`
		Error   *string `json:"error"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	if env.Error != nil && *env.Error != "" {
		return *env.Error
	}
	if !env.Success && env.Message != nil && *env.Message != "" {
		return *env.Message
	}
	return ""
}

// decodeResource decodes a 2xx body that is either the raw resource or
// an {success,data,error} envelope around it. The backend uses both
// shapes across endpoints, so both must be accepted.
func decodeResource[T any](data []byte) (T, error) {
	var zero T

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *string         `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err == nil {
		if env.Error != nil && *env.Error != "" && !env.Success {
			return zero, &ServerError{Message: *env.Error}
		}
		if env.Success && len(env.Data) > 0 {
			var out T
			if err := json.Unmarshal(env.Data, &out); err != nil {
				return zero, fmt.Errorf("decode response: %w", err)
			}
			return out, nil
		}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
