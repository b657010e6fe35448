package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/hashicorp/go-retryablehttp"
)

// Authenticator decorates an outgoing request with credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, req *http.Request) error
}

// Client is the request/response marshaller shared by every service client.
type Client struct {
	baseURL        string
	authenticator  Authenticator
	httpClient     *retryablehttp.Client
	logger         watson.Logger
	debug          bool
	userAgent      string
	defaultHeaders map[string]string
	interceptors   *watson.InterceptorChain
	insecure       bool
}

// Request describes one service call.
type Request struct {
	Method string
	Path   string
	// Operation is the operation id reported to interceptors.
	Operation string
	Headers   map[string]string
	Query     url.Values
	// Params is a struct with schema tags, merged into Query.
	Params interface{}
	// Body is encoded as JSON.
	Body interface{}
	// RawBody is sent as-is with ContentType.
	RawBody io.Reader
	// Form is sent as multipart/form-data.
	Form        []FormPart
	ContentType string
	Accept      string
}

// FormPart is one multipart field. Content takes precedence over Value.
type FormPart struct {
	Name        string
	Filename    string
	ContentType string
	Content     io.Reader
	Value       string
}

// Response is a fully read service response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger watson.Logger) Option {
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

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries of 429, 5xx and connection failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithDefaultHeaders sets headers sent with every call.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.defaultHeaders[key] = value
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(insecure bool) Option {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *watson.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a marshaller for baseURL. authenticator may be nil.
func NewClient(baseURL string, authenticator Authenticator, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		authenticator:  authenticator,
		httpClient:     retryClient,
		userAgent:      constants.DefaultUserAgent,
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in
		client.httpClient.HTTPClient.Transport = transport
	}

	return client
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.HTTPClient.Timeout
}

// Authenticator returns the configured authenticator.
func (c *Client) Authenticator() Authenticator {
	return c.authenticator
}

// Do executes req. For non-2xx responses both the response and a
// *watson.ServiceError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	// interceptors see the URL with any static API key masked
	intercepted := &watson.Request{
		Method:    httpReq.Method,
		URL:       redactURL(httpReq.URL),
		Operation: req.Operation,
		Headers:   httpReq.Header,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":    httpReq.Method,
			"url":       redactURL(httpReq.URL),
			"operation": req.Operation,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		wrapped := fmt.Errorf("executing request: %w", err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &watson.Response{Error: wrapped})

		return nil, wrapped
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"size":   len(body),
		})
	}

	var callErr error
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		callErr = watson.NewServiceError(resp.StatusCode, resp.Headers, resp.Body)
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &watson.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      callErr,
	})
	if err != nil && callErr == nil {
		callErr = err
	}

	return resp, callErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	query := url.Values{}

	for key, values := range req.Query {
		query[key] = append(query[key], values...)
	}

	if req.Params != nil {
		params, err := EncodeQuery(req.Params)
		if err != nil {
			return nil, err
		}

		for key, values := range params {
			query[key] = append(query[key], values...)
		}
	}

	fullURL := c.baseURL + req.Path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	var bodyArg interface{}
	if body != nil {
		bodyArg = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyArg)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range c.defaultHeaders {
		setHeader(httpReq.Header, key, value)
	}

	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	accept := req.Accept
	if accept == "" {
		accept = constants.ContentTypeJSON
	}

	httpReq.Header.Set(constants.HeaderAccept, accept)

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	for key, value := range req.Headers {
		setHeader(httpReq.Header, key, value)
	}

	if c.authenticator != nil {
		err = c.authenticator.Authenticate(ctx, httpReq.Request)
		if err != nil {
			return nil, fmt.Errorf("authenticating request: %w", err)
		}
	}

	return httpReq, nil
}

func encodeBody(req *Request) ([]byte, string, error) {
	switch {
	case len(req.Form) > 0:
		return encodeMultipart(req.Form)

	case req.RawBody != nil:
		data, err := io.ReadAll(req.RawBody)
		if err != nil {
			return nil, "", fmt.Errorf("reading request body: %w", err)
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeOctetStream
		}

		return data, contentType, nil

	case req.Body != nil:
		data, err := json.Marshal(stripNils(req.Body))
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeJSON
		}

		return data, contentType, nil
	}

	return nil, "", nil
}

// stripNils drops nil values from map bodies. Struct bodies rely on omitempty.
func stripNils(body interface{}) interface{} {
	m, ok := body.(map[string]interface{})
	if !ok {
		return body
	}

	cleaned := make(map[string]interface{}, len(m))

	for key, value := range m {
		if value != nil {
			cleaned[key] = value
		}
	}

	return cleaned
}

// setHeader sets key unless value is empty.
func setHeader(header http.Header, key, value string) {
	if value == "" {
		return
	}

	header.Set(key, value)
}

func redactURL(u *url.URL) string {
	redacted := *u
	query := redacted.Query()

	for _, key := range []string{constants.APIKeyQueryParam, constants.GatewayAPIKeyQueryParam} {
		if query.Has(key) {
			query.Set(key, constants.MaskedSecret)
		}
	}

	redacted.RawQuery = query.Encode()

	return redacted.String()
}
