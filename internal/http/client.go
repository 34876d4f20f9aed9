// Package http implements the request gateway: the single point through
// which every provider call passes. It builds the target URL, attaches the
// auth header from a credential snapshot, dispatches the HTTP call, and
// classifies the response into a vapi.Result.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/vonix-io/vapi/internal/auth"
	"github.com/vonix-io/vapi/internal/constants"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// Request represents an API request before dispatch. Path is relative to
// the versioned API root and must carry its own trailing slash; the
// gateway never normalizes it. Query applies to GET, Body to POST.
type Request struct {
	Method  string
	Path    string
	Query   *vapi.Params
	Body    *vapi.Params
	Headers map[string]string
}

// Client is the request gateway. One instance serves one credential store;
// it is safe for concurrent use.
type Client struct {
	baseURL    string
	store      *auth.Store
	httpClient *retryablehttp.Client
	logger     vapi.Logger
	debug      bool
	userAgent  string
	cache      vapi.Cache
	cacheTTL   time.Duration
}

// Option configures the gateway.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger vapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each HTTP exchange. The default is no client-side
// timeout; per-call deadlines come from the context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig opts in to retrying transient failures (connection
// errors, 429, 5xx). Without it every invocation issues exactly one
// attempt.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithCache enables GET response caching with the given TTL.
func WithCache(cache vapi.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a new gateway for the given base URL and credential
// store. The store may be nil for unauthenticated use in tests.
func NewClient(baseURL string, store *auth.Store, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// The last response must survive retry exhaustion: a 5xx the provider
	// actually sent is classified as a Result, never surfaced as an error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		store:      store,
		httpClient: retryClient,
		userAgent:  "vapi-client/go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do dispatches one request and classifies the response.
//
// For status 200, 201, or 202 the body is decoded JSON and Result.Decoded
// is set; a body that fails to decode yields a *vapi.DecodeError alongside
// the partially filled Result. For every other status the body is returned
// verbatim in Result.Raw with a nil error — provider errors are values,
// and callers branch on Result.StatusCode. A failed exchange yields a
// *vapi.TransportError and no Result.
func (c *Client) Do(ctx context.Context, req *Request) (*vapi.Result, error) {
	url := c.buildURL(req)

	if c.cache != nil && req.Method == http.MethodGet {
		if result, ok := c.cachedResult(ctx, url); ok {
			return result, nil
		}
	}

	httpReq, err := c.buildRequest(ctx, req, url)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    url,
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &vapi.TransportError{URL: url, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &vapi.TransportError{URL: url, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         url,
			"status_code": resp.StatusCode,
		})
	}

	result, err := classify(resp.StatusCode, resp.Header, body)
	if err != nil {
		return result, err
	}

	if c.cache != nil && req.Method == http.MethodGet && result.Success() {
		c.storeCached(ctx, url, result)
	}

	return result, nil
}

// Get issues a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, params *vapi.Params) (*vapi.Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: params})
}

// Post issues a POST request with the parameters serialized as an ordered
// JSON object body.
func (c *Client) Post(ctx context.Context, path string, params *vapi.Params) (*vapi.Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: params})
}

// Delete issues a DELETE request. No body is sent.
func (c *Client) Delete(ctx context.Context, path string) (*vapi.Result, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// buildURL assembles base + version + path, appending the encoded query
// only when it is non-empty so an empty parameter list never produces a
// bare "?".
func (c *Client) buildURL(req *Request) string {
	url := c.baseURL + constants.APIVersion + req.Path

	if query := req.Query.Encode(); query != "" {
		url += "?" + query
	}

	return url
}

func (c *Client) buildRequest(ctx context.Context, req *Request, url string) (*retryablehttp.Request, error) {
	var body []byte

	if req.Body != nil && req.Method == http.MethodPost {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, url, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Snapshot both credential fields under one lock so a concurrent
	// setter cannot produce a torn ID/token pair.
	if c.store != nil {
		httpReq.Header.Set("Authorization", c.store.Snapshot().AuthorizationHeader())
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// classify maps (statusCode, headers, body) onto the Result contract.
func classify(statusCode int, headers http.Header, body []byte) (*vapi.Result, error) {
	result := &vapi.Result{
		StatusCode: statusCode,
		Headers:    headers,
		Raw:        body,
	}

	if !result.Success() {
		return result, nil
	}

	if len(body) == 0 {
		return result, &vapi.DecodeError{StatusCode: statusCode, Body: body, Err: vapi.ErrEmptyResponse}
	}

	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return result, &vapi.DecodeError{StatusCode: statusCode, Body: body, Err: err}
	}

	result.Decoded = decoded

	return result, nil
}

func (c *Client) cachedResult(ctx context.Context, url string) (*vapi.Result, bool) {
	entry, err := c.cache.Get(ctx, url)
	if err != nil {
		return nil, false
	}

	result, err := classify(entry.StatusCode, nil, entry.Body)
	if err != nil {
		return nil, false
	}

	return result, true
}

func (c *Client) storeCached(ctx context.Context, url string, result *vapi.Result) {
	entry := &vapi.CacheEntry{
		StatusCode: result.StatusCode,
		Body:       result.Raw,
		ExpiresAt:  time.Now().Add(c.cacheTTL),
	}

	err := c.cache.Set(ctx, url, entry)
	if err != nil && c.logger != nil {
		c.logger.Warn("failed to cache response", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
}
