// Package api is the HTTP client for the CarbonTrail marketplace
// backend: a thin pass-through per REST resource on top of a transport
// that owns credential attachment and 401 handling.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/carbontrail/carbontrail/internal/logging"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Options configures a Client beyond its base URL.
type Options struct {
	// Credential returns the live bearer token, "" when anonymous.
	Credential func() string
	// OnUnauthorized is invoked for each 401 on an authenticated call.
	OnUnauthorized func()
	// Timeout bounds a single request. Zero means the default.
	Timeout time.Duration
	// Base replaces the underlying RoundTripper (tests).
	Base http.RoundTripper
}

func NewClient(baseURL string, opts Options, log logging.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	cred := opts.Credential
	if cred == nil {
		cred = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: NewTransport(opts.Base, cred, opts.OnUnauthorized),
		},
		log: log,
	}
}

// getJSON performs a GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// postJSON performs a POST with a JSON body and decodes a 2xx reply into
// out (which may be nil when the caller ignores the body).
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, preserving the
// status and the backend's human-readable message when one is present.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
