// Package rest is the shared HTTP plumbing for the backend client. Every
// endpoint method in the domain packages funnels through it: one request per
// call, bearer credential attached when present, JSON (or multipart) in,
// decoded JSON out. It performs no caching and no retries.
package rest

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

	"github.com/rs/zerolog"
)

// Error is the opaque failure surfaced for any non-2xx response. Transport
// failures are returned as-is from the underlying http.Client.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Client issues requests against a single API base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// GetJSON performs a GET and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, token, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, token, path, nil, out)
}

// PostJSON performs a POST with an optional JSON body. A nil out skips
// decoding (204-style endpoints).
func (c *Client) PostJSON(ctx context.Context, token, path string, in, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, token, path, in, out)
}

// PutJSON performs a PUT with an optional JSON body.
func (c *Client) PutJSON(ctx context.Context, token, path string, in, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, token, path, in, out)
}

func (c *Client) doJSON(ctx context.Context, method, token, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

// FilePart is one file entry of a multipart form.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// PostMultipart performs a POST with a multipart/form-data body built from
// the given fields and files.
func (c *Client) PostMultipart(ctx context.Context, token, path string, fields map[string]string, files []FilePart, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %q: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("copy form file %q: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts a human-readable message from an error response body.
// Both {"error": ...} and echo's {"message": ...} shapes are understood;
// anything else falls back to the HTTP status text.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
