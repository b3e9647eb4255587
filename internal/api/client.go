// Package api provides the HTTP client adapter for the backend REST API.
// Every request goes through here: the base URL is centralized and the
// bearer token is attached automatically when one is available. The
// adapter does not retry, cache, or deduplicate requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// TokenFunc returns the current bearer token, or "" when the user is not
// logged in. It is consulted on every request so a login or logout in the
// same process takes effect immediately.
type TokenFunc func() string

// Client performs requests against the configured backend base URL.
type Client struct {
	base  string
	http  *http.Client
	token TokenFunc
}

// New creates a Client for the given base URL. timeout of zero means no
// timeout: a hung backend call blocks until the context is done.
func New(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: timeout},
		token: token,
	}
}

// Get issues a GET request and decodes the JSON response into out.
// Non-2xx responses are returned as *Error.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, "", out, false)
	return err
}

// GetStatus issues a GET request with failure-as-status semantics: a non-2xx
// response is not converted into an error, the status code is returned as a
// value instead. Only transport-level failures produce an error. out is
// decoded only on 2xx. Used by the role resolver and the student gate, which
// branch on status.
func (c *Client) GetStatus(ctx context.Context, path string, out any) (int, error) {
	return c.do(ctx, http.MethodGet, path, nil, "", out, true)
}

// Post issues a POST request with a JSON body (nil for an empty body) and
// decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var r io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshalling request body: %w", err)
		}
		r = bytes.NewReader(data)
		contentType = "application/json"
	}
	_, err := c.do(ctx, http.MethodPost, path, r, contentType, out, false)
	return err
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "", out, false)
	return err
}

// PostFile uploads a file as a multipart form under the given field name and
// decodes the JSON response into out. Used for rich-text image uploads.
func (c *Client) PostFile(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("api: creating multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("api: copying file into request: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: finalizing multipart body: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), out, false)
	return err
}

// do performs the request. When rawStatus is true, non-2xx responses are
// reported through the returned status code rather than as an *Error.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, rawStatus bool) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return 0, fmt.Errorf("api: creating %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("api: reading response of %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if rawStatus {
			return resp.StatusCode, nil
		}
		return resp.StatusCode, &Error{Status: resp.StatusCode, Body: data}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("api: decoding response of %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}
