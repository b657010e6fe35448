package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/internal/auth"
	"github.com/fivetwenty-io/watson/internal/constants"
	watsonhttp "github.com/fivetwenty-io/watson/internal/http"
	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDenied = errors.New("denied")

// MockAuthenticator for testing.
type MockAuthenticator struct {
	token string
	err   error
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	if m.err != nil {
		return m.err
	}

	req.Header.Set("Authorization", "Bearer "+m.token)

	return nil
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v3/models", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, constants.DefaultUserAgent, request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"model_id": "en-es", "status": "available"})
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, &MockAuthenticator{token: "test-token"})

		resp, err := client.Do(context.Background(), &watsonhttp.Request{
			Method: "GET",
			Path:   "/v3/models",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "en-es", result["model_id"])
	})

	t.Run("query parameters from struct", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "2018-05-01", query.Get("version"))
			assert.Equal(t, "false", query.Get("sentences"))
			assert.Equal(t, "emotion,social", query.Get("tones"))
			assert.False(t, query.Has("source"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		params := struct {
			Sentences *bool      `schema:"sentences,omitempty"`
			Tones     watson.CSV `schema:"tones,omitempty"`
			Source    *string    `schema:"source,omitempty"`
		}{
			Sentences: watson.Bool(false),
			Tones:     watson.CSV{"emotion", "social"},
		}

		resp, err := client.Do(context.Background(), &watsonhttp.Request{
			Method: "GET",
			Path:   "/v3/tone",
			Query:  url.Values{"version": []string{"2018-05-01"}},
			Params: &params,
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body drops nil values", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "hello", body["text"])
			assert.NotContains(t, body, "model_id")

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/v3/translate", map[string]interface{}{
			"text":     "hello",
			"model_id": nil,
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("raw body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, "Language identification", string(body))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &watsonhttp.Request{
			Method:      "POST",
			Path:        "/v3/identify",
			RawBody:     strings.NewReader("Language identification"),
			ContentType: "text/plain",
		})
		require.NoError(t, err)
	})

	t.Run("multipart form", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.True(t, strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, request.ParseMultipartForm(1<<20))

			assert.Equal(t, "en-es", request.FormValue("base_model_id"))

			file, header, err := request.FormFile("forced_glossary")
			require.NoError(t, err)

			defer func() { _ = file.Close() }()

			content, _ := io.ReadAll(file)
			assert.Equal(t, "glossary.tmx", header.Filename)
			assert.Equal(t, "<tmx/>", string(content))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &watsonhttp.Request{
			Method: "POST",
			Path:   "/v3/models",
			Form: []watsonhttp.FormPart{
				{Name: "base_model_id", Value: "en-es"},
				{
					Name:        "forced_glossary",
					Filename:    "glossary.tmx",
					ContentType: "application/octet-stream",
					Content:     strings.NewReader("<tmx/>"),
				},
			},
		})
		require.NoError(t, err)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Global-Transaction-Id", "txn-1")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"error": "Model not found", "code": 404})
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/v3/models/invalid", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)

		serviceErr := &watson.ServiceError{}
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, "Model not found", serviceErr.Message)
		assert.Equal(t, "txn-1", serviceErr.TransactionID)
	})

	t.Run("header merge order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "request", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "true", request.Header.Get("X-Watson-Learning-Opt-Out"))
			assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("X-Empty"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil,
			watsonhttp.WithUserAgent("custom-agent"),
			watsonhttp.WithDefaultHeaders(map[string]string{
				"X-Custom-Header":           "default",
				"X-Watson-Learning-Opt-Out": "true",
			}),
		)

		resp, err := client.Do(context.Background(), &watsonhttp.Request{
			Method: "GET",
			Path:   "/v1/voices",
			Headers: map[string]string{
				"X-Custom-Header": "request",
				"X-Empty":         "",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("authentication failure stops the call", func(t *testing.T) {
		t.Parallel()

		called := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			called = true
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, &MockAuthenticator{err: errDenied})

		_, err := client.Get(context.Background(), "/v1/voices", nil)
		require.ErrorIs(t, err, errDenied)
		assert.False(t, called)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithLogger(logger), watsonhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/v1/voices", nil)
		require.NoError(t, err)

		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("interceptors see operation and status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "intercepted", request.Header.Get("X-Trace"))
			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		chain := watson.NewInterceptorChain()
		chain.AddRequestInterceptor(watson.HeaderInterceptor(map[string]string{"X-Trace": "intercepted"}))

		var seen *watson.Response

		var operation string

		chain.AddResponseInterceptor(func(ctx context.Context, req *watson.Request, resp *watson.Response) error {
			operation = req.Operation
			seen = resp

			return nil
		})

		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithInterceptors(chain))

		_, err := client.Do(context.Background(), &watsonhttp.Request{
			Method:    "POST",
			Path:      "/v1/recognitions",
			Operation: "create_job",
		})
		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.Equal(t, http.StatusAccepted, seen.StatusCode)
		assert.Equal(t, "create_job", operation)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*watsonhttp.Client, context.Context) (*watsonhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *watsonhttp.Client, ctx context.Context) (*watsonhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *watsonhttp.Client, ctx context.Context) (*watsonhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *watsonhttp.Client, ctx context.Context) (*watsonhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *watsonhttp.Client, ctx context.Context) (*watsonhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *watsonhttp.Client, ctx context.Context) (*watsonhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := watsonhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("single attempt by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})
}

func TestPathJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/v3/models/en-es", watsonhttp.PathJoin("v3", "models", "en-es"))
	assert.Equal(t, "/v1/words/caf%C3%A9%20au%20lait", watsonhttp.PathJoin("v1", "words", "café au lait"))
	assert.Equal(t, "/v1/words/a%2Fb", watsonhttp.PathJoin("v1", "words", "a/b"))
	assert.Equal(t, "/v1/customizations/cust/words/%2F", watsonhttp.PathJoin("v1", "customizations", "cust", "words", "/"))
	assert.Equal(t, "/v1/words/%2Fslash%2F", watsonhttp.PathJoin("v1", "words", "/slash/"))
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	values, err := watsonhttp.EncodeQuery(nil)
	require.NoError(t, err)
	assert.Empty(t, values)

	values, err = watsonhttp.EncodeQuery(&struct {
		Customization *string `schema:"customization_id,omitempty"`
		Interim       *bool   `schema:"interim_results,omitempty"`
		MaxAlts       *int64  `schema:"max_alternatives,omitempty"`
	}{
		Interim: watson.Bool(true),
		MaxAlts: watson.Int64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "interim_results=true&max_alternatives=3", values.Encode())

	values, err = watsonhttp.EncodeQuery(&struct {
		Threshold *float64 `schema:"keywords_threshold,omitempty"`
		Weight    *float64 `schema:"weight,omitempty"`
		Smart     *bool    `schema:"smart_formatting,omitempty"`
	}{
		Threshold: watson.Float64(0.0000001),
		Weight:    watson.Float64(2.5),
		Smart:     watson.Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0000001", values.Get("keywords_threshold"))
	assert.Equal(t, "2.5", values.Get("weight"))
	assert.Equal(t, "false", values.Get("smart_formatting"))
}

func TestClient_DialWebsocket(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/recognize", request.URL.Path)
		assert.Equal(t, "en-US_BroadbandModel", request.URL.Query().Get("model"))
		assert.Equal(t, "Bearer ws-token", request.Header.Get("Authorization"))

		conn, err := upgrader.Upgrade(writer, request, nil)
		if err != nil {
			return
		}

		defer func() { _ = conn.Close() }()

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"state":"listening"}`))
	}))
	defer server.Close()

	client := watsonhttp.NewClient(server.URL, &MockAuthenticator{token: "ws-token"})

	conn, err := client.DialWebsocket(context.Background(), "/v1/recognize", url.Values{"model": []string{"en-US_BroadbandModel"}})
	require.NoError(t, err)

	defer func() { _ = conn.Close() }()

	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"listening"}`, string(message))
}

func TestClient_InterceptorsSeeMaskedAPIKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "SECRET-KEY", request.URL.Query().Get("api_key"))

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}

	var seen string

	chain := watson.NewInterceptorChain()
	chain.AddRequestInterceptor(watson.LoggingInterceptor(logger))
	chain.AddRequestInterceptor(func(ctx context.Context, req *watson.Request) error {
		seen = req.URL

		return nil
	})

	client := watsonhttp.NewClient(server.URL, auth.NewAPIKeyAuthenticator("SECRET-KEY", server.URL),
		watsonhttp.WithInterceptors(chain))

	_, err := client.Do(context.Background(), &watsonhttp.Request{Method: http.MethodGet, Path: "/v1/x"})
	require.NoError(t, err)

	assert.NotContains(t, seen, "SECRET-KEY")
	assert.Contains(t, seen, "api_key=%2A%2A%2A")

	require.Len(t, logger.logs, 1)
	fields, _ := logger.logs[0]["fields"].(map[string]interface{})
	assert.NotContains(t, fields["url"], "SECRET-KEY")
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	t.Run("defaults to sixty seconds", func(t *testing.T) {
		t.Parallel()

		client := watsonhttp.NewClient("https://example.com", nil)
		assert.Equal(t, constants.DefaultHTTPTimeout, client.Timeout())
		assert.Equal(t, 60*time.Second, client.Timeout())
	})

	t.Run("overridden", func(t *testing.T) {
		t.Parallel()

		client := watsonhttp.NewClient("https://example.com", nil, watsonhttp.WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.Timeout())

		client = watsonhttp.NewClient("https://example.com", nil, watsonhttp.WithTimeout(0))
		assert.Equal(t, constants.DefaultHTTPTimeout, client.Timeout())
	})

	t.Run("slow response fails", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := watsonhttp.NewClient(server.URL, nil, watsonhttp.WithTimeout(50*time.Millisecond))

		_, err := client.Get(context.Background(), "/v1/slow", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "executing request")
	})
}
