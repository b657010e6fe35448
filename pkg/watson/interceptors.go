package watson

import (
	"context"
	"fmt"
	"net/http"
	"time"

	rate "github.com/beefsack/go-rate"
	"github.com/fivetwenty-io/watson/internal/constants"
)

// Request represents an outgoing service call that can be intercepted.
type Request struct {
	Method string
	URL    string
	// Operation is the operation id sent in the analytics header.
	Operation string
	Headers   http.Header
	Metadata  map[string]interface{}
}

// Response represents a service response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("Watson Request", map[string]interface{}{
			"method":    req.Method,
			"url":       req.URL,
			"operation": req.Operation,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"operation":   req.Operation,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("Watson Response Error", fields)
		} else {
			logger.Debug("Watson Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// LearningOptOutInterceptor asks the service not to use request data for
// training.
func LearningOptOutInterceptor() RequestInterceptor {
	return HeaderInterceptor(map[string]string{constants.HeaderLearningOptOut: constants.BooleanTrue})
}

// CustomerIDInterceptor labels every request with customerID through the
// X-Watson-Metadata header, so the data can later be removed with the
// services' DeleteUserData calls.
func CustomerIDInterceptor(customerID string) RequestInterceptor {
	return HeaderInterceptor(map[string]string{constants.HeaderWatsonMetadata: "customer_id=" + customerID})
}

// RateLimitInterceptor allows at most limit calls per interval. Calls over
// the limit wait for a free slot or for ctx to be done.
func RateLimitInterceptor(limit int, interval time.Duration) RequestInterceptor {
	limiter := rate.New(limit, interval)

	return func(ctx context.Context, req *Request) error {
		for {
			ok, remaining := limiter.Try()
			if ok {
				return nil
			}

			timer := time.NewTimer(remaining)

			select {
			case <-ctx.Done():
				timer.Stop()

				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}
