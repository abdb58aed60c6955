// Package moru is the Go client for the Moru sandbox API.
package moru

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moru-ai/sdks/services"
)

// DefaultBaseURL is used when no WithBaseURL option is given
const DefaultBaseURL = "https://api.moru.io"

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// Client is the main client for interacting with the Moru API
// After creation, the client is immutable and safe for concurrent use
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// Custom headers to include in all requests
	headers map[string]string

	timeout     time.Duration
	retryConfig *RetryConfig
	logger      *log.Logger

	// Service groups
	Sandbox *services.SandboxService
}

// RetryConfig configures retry behavior for failed requests
type RetryConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a new Client with the given options
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, &ValidationError{
			Field:   "apiKey",
			Message: "MORU_API_KEY is not set. Please set your API key in .env file or environment variables",
		}
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		headers: make(map[string]string),
		timeout: 30 * time.Second,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryConfig: &RetryConfig{
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
	}

	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	client.Sandbox = services.NewSandboxService(client)

	return client, nil
}

// WithBaseURL sets a custom base URL for the client
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a custom header that will be included in all requests
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds multiple custom headers that will be included in all requests
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithLogger logs retries and failed attempts to logger
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// GetAPIKey returns the configured API key
func (c *Client) GetAPIKey() string {
	return c.apiKey
}

// GetBaseURL returns the configured base URL
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// NewRequest creates a new HTTP request with auth headers and custom headers
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// Do executes an HTTP request, retrying transport errors and 5xx responses
// with a linear backoff. The last 5xx response is returned as is; transport
// failures come back as *NetworkError.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		attemptReq, err := rewind(req, attempt)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(attemptReq)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if attempt >= c.retryConfig.MaxRetries || ctx.Err() != nil {
			if err != nil {
				return nil, &NetworkError{Err: err}
			}
			return resp, nil
		}

		if err != nil {
			c.logf("%s %s: attempt %d failed: %v", req.Method, req.URL.Path, attempt+1, err)
		} else {
			c.logf("%s %s: attempt %d got status %d", req.Method, req.URL.Path, attempt+1, resp.StatusCode)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		delay := c.retryConfig.RetryDelay * time.Duration(attempt+1)
		select {
		case <-ctx.Done():
			return nil, &NetworkError{Err: ctx.Err()}
		case <-time.After(delay):
		}
	}
}

// CheckResponse maps a non-2xx response to *APIError or *RateLimitError
func (c *Client) CheckResponse(resp *http.Response) error {
	return CheckResponse(resp)
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// rewind returns req for the first attempt and a copy with a fresh body for
// later ones.
func rewind(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 0 || req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("cannot retry %s %s: request body is not rewindable", req.Method, req.URL.Path)
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("failed to rewind request body: %w", err)
	}
	clone := req.Clone(req.Context())
	clone.Body = body
	return clone, nil
}
