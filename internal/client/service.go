package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/internal/http"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

// Static errors for err113 compliance.
var (
	ErrServiceURLRequired = errors.New("service URL is required")
)

// serviceInfo identifies a service in the analytics header.
type serviceInfo struct {
	name      string
	version   string
	versioned bool
}

// service is the shared base embedded by every Watson service client.
type service struct {
	httpClient    *http.Client
	authenticator http.Authenticator
	info          serviceInfo
	apiVersion    string
	logger        watson.Logger
}

func newService(config *watson.Config, info serviceInfo) (*service, error) {
	if config == nil {
		return nil, watson.ErrConfigRequired
	}

	if config.URL == "" {
		return nil, ErrServiceURLRequired
	}

	if info.versioned && config.Version == "" {
		return nil, watson.ErrVersionRequired
	}

	authenticator, err := createAuthenticator(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.URL, authenticator, createHTTPClientOptions(config)...)

	return &service{
		httpClient:    httpClient,
		authenticator: authenticator,
		info:          info,
		apiVersion:    config.Version,
		logger:        config.Logger,
	}, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *watson.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if len(config.DefaultHeaders) > 0 {
		httpOpts = append(httpOpts, http.WithDefaultHeaders(config.DefaultHeaders))
	}

	if config.DisableSSLVerification {
		httpOpts = append(httpOpts, http.WithInsecureSkipVerify(true))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// ServiceURL returns the base URL the client talks to.
func (s *service) ServiceURL() string {
	return s.httpClient.BaseURL()
}

// analyticsHeader is the value of the X-IBMCloud-SDK-Analytics header.
func (s *service) analyticsHeader(operation string) string {
	return fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s", s.info.name, s.info.version, operation)
}

// newRequest starts a request carrying the analytics header, the API version
// and any caller headers.
func (s *service) newRequest(method, path, operation string, headers map[string]string) *http.Request {
	req := &http.Request{
		Method:    method,
		Path:      path,
		Operation: operation,
		Headers:   map[string]string{constants.HeaderSDKAnalytics: s.analyticsHeader(operation)},
		Query:     url.Values{},
	}

	if s.info.versioned {
		req.Query.Set(constants.QueryParamVersion, s.apiVersion)
	}

	for key, value := range headers {
		req.Headers[key] = value
	}

	return req
}

// invoke executes req and decodes a JSON body into result when result is not nil.
func (s *service) invoke(ctx context.Context, req *http.Request, result interface{}) (*watson.DetailedResponse, error) {
	resp, err := s.httpClient.Do(ctx, req)
	detailed := detailedResponse(resp)

	if err != nil {
		return detailed, err
	}

	if result != nil && len(resp.Body) > 0 {
		err = watson.UnmarshalModel(resp.Body, result)
		if err != nil {
			return detailed, err
		}

		detailed.Result = result
	}

	return detailed, nil
}

// invokeBinary executes req and returns the raw body.
func (s *service) invokeBinary(ctx context.Context, req *http.Request) ([]byte, *watson.DetailedResponse, error) {
	resp, err := s.httpClient.Do(ctx, req)
	detailed := detailedResponse(resp)

	if err != nil {
		return nil, detailed, err
	}

	return resp.Body, detailed, nil
}

func detailedResponse(resp *http.Response) *watson.DetailedResponse {
	if resp == nil {
		return nil
	}

	return &watson.DetailedResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		RawResult:  resp.Body,
	}
}

// filePart builds a multipart file part, defaulting the file name to the field name.
func filePart(name string, content io.Reader, filename string, contentType *string) http.FormPart {
	if filename == "" {
		filename = name
	}

	return http.FormPart{
		Name:        name,
		Filename:    filename,
		ContentType: watson.StringValue(contentType),
		Content:     content,
	}
}

// jsonPart builds a multipart part holding a JSON document.
func jsonPart(name string, value interface{}) (http.FormPart, error) {
	data, err := watson.MarshalModel(value)
	if err != nil {
		return http.FormPart{}, err
	}

	return http.FormPart{
		Name:        name,
		ContentType: constants.ContentTypeJSON,
		Content:     strings.NewReader(string(data)),
		Filename:    name,
	}, nil
}

// addFormValue appends a plain form field when value is set.
func addFormValue(req *http.Request, name string, value *string) {
	if value == nil {
		return
	}

	req.Form = append(req.Form, http.FormPart{Name: name, Value: *value})
}
