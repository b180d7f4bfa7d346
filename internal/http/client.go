// Package http implements the request dispatcher shared by every resource
// client: one authenticated POST per endpoint call, with the response
// interpreted into a typed success value or a typed error.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// Authentication header names. Both are sent on every request.
const (
	HeaderClientID = "PLAID-CLIENT-ID"
	HeaderSecret   = "PLAID-SECRET"
)

// Credentials carry the client identifier and secret injected into every
// request. They are immutable for the lifetime of the client and never
// logged.
type Credentials struct {
	ClientID string
	Secret   string
}

// Client sends requests to the API. Every endpoint uses POST with a JSON
// body; there is no method branch and no query string. The client holds no
// per-request state, so concurrent calls are safe.
type Client struct {
	baseURL     string
	credentials Credentials
	httpClient  *retryablehttp.Client
	userAgent   string
	logger      plaid.Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger plaid.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout on the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig opts in to transparent retries in the transport. The
// dispatcher itself never retries; by default RetryMax is zero and every
// request is attempted exactly once.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithHTTPClient replaces the underlying HTTP transport, for callers that
// need custom TLS, proxies, or timeout policy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new API client rooted at baseURL.
func NewClient(baseURL string, credentials Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request is a single endpoint call: a relative path and a JSON-serializable
// body. Headers are extra headers beyond the fixed set.
type Request struct {
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Post sends body to path and returns the response.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Path: path, Body: body})
}

// Do performs one round trip. Exactly one of four outcomes is produced: a
// successful response, a *plaid.Error parsed from a non-2xx body, a
// *plaid.TransportError, or a *plaid.ParseError. A malformed body is always
// reported as a parse failure, never replaced with a default value.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, &plaid.ParseError{Op: "encoding request body", Err: err}
	}

	url := c.baseURL + req.Path

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderClientID, c.credentials.ClientID)
	httpReq.Header.Set(HeaderSecret, c.credentials.Secret)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodPost,
			"url":    url,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &plaid.TransportError{Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &plaid.TransportError{Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    url,
		})
	}

	if httpResp.StatusCode >= http.StatusOK && httpResp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	apiErr := &plaid.Error{}

	err = json.Unmarshal(body, apiErr)
	if err != nil {
		return resp, &plaid.ParseError{Op: "decoding error response", Err: err}
	}

	return resp, apiErr
}
