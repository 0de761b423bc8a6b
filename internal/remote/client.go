// Package remote implements the HTTP client for the upstream cinema API.
// All persistence and business rules live behind that API; the gateway
// only relays calls and surfaces failures.  Methods accept the caller's
// bearer token so user requests are executed with the user's own
// identity.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError describes a non-2xx response from the upstream API.  The
// body is retained (truncated) for logging; callers treat any APIError
// as a uniform "operation failed" signal.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote api: status %d: %s", e.Status, e.Body)
}

// Client talks to the upstream cinema API.  It is safe for concurrent
// use; the zero value is not usable, construct it with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL.  A non-positive
// timeout falls back to ten seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// listEnvelope is the paging wrapper used by upstream list endpoints.
type listEnvelope[T any] struct {
	Data       []T             `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
}

const maxErrBody = 512

// do executes one request against the upstream API.  in (when non-nil)
// is sent as a JSON body; out (when non-nil) receives the decoded
// response.  token (when non-empty) is forwarded as a bearer credential.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote api: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("remote api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote api: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrBody))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("remote api: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	return q
}
