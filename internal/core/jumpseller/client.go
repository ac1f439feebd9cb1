// Package jumpseller is a thin JSON client for the Jumpseller store API.
// Authentication travels as the login and authtoken query parameters on every call.
package jumpseller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/httpclient"
)

// maxErrorBody caps how much of an error response is kept on APIError.
const maxErrorBody = 2048

// APIError is returned when Jumpseller answers with a non-2xx status.
type APIError struct {
	// Method is the HTTP method of the failed call.
	Method string
	// Path is the API path, without credentials.
	Path string
	// StatusCode is the HTTP status returned by Jumpseller.
	StatusCode int
	// Body is the (truncated) response body.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jumpseller %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a Jumpseller 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client performs authenticated JSON calls against the Jumpseller API.
type Client struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Jumpseller connection details.
	config config.JumpsellerConfig
}

// NewClient creates a new Client.
func NewClient(cfg config.JumpsellerConfig, timeout time.Duration) *Client {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Client{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// Get performs a GET on path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST of body on path and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT of body on path and decodes the JSON response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// HealthCheck verifies that the API is reachable and the credentials are valid.
func (c *Client) HealthCheck(ctx context.Context) error {
	var info map[string]any
	if err := c.Get(ctx, "/store/info.json", nil, &info); err != nil {
		return fmt.Errorf("jumpseller health check failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.config.URL + path)
	if err != nil {
		return "", fmt.Errorf("invalid jumpseller url: %w", err)
	}

	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("login", c.config.Login)
	q.Set("authtoken", c.config.AuthToken)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
