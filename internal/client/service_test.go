package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/watson/internal/auth"
	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/fivetwenty-io/watson/pkg/watson"
)

const testVersion = "2018-05-01"

// newTestConfig returns a config pointing at url with basic credentials.
func newTestConfig(url string) *watson.Config {
	return &watson.Config{
		URL:      url,
		Version:  testVersion,
		Username: "user",
		Password: "pass",
	}
}

// jsonHandler answers every request with status and body encoded as JSON.
func jsonHandler(t *testing.T, status int, body interface{}, check func(r *http.Request)) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		switch payload := body.(type) {
		case nil:
		case string:
			_, _ = io.WriteString(w, payload)
		default:
			_ = json.NewEncoder(w).Encode(payload)
		}
	}
}

// decodeBody reads a JSON request body into a generic map.
func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

	return body
}

func TestNewService(t *testing.T) {
	t.Parallel()

	info := serviceInfo{name: "test", version: "V1", versioned: true}

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := newService(nil, info)
		require.ErrorIs(t, err, watson.ErrConfigRequired)
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&watson.Config{Username: "u", Password: "p", Version: testVersion}, info)
		require.ErrorIs(t, err, ErrServiceURLRequired)
	})

	t.Run("requires version for versioned services", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&watson.Config{URL: "https://example.com", Username: "u", Password: "p"}, info)
		require.ErrorIs(t, err, watson.ErrVersionRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&watson.Config{URL: "https://example.com", Version: testVersion}, info)
		require.ErrorIs(t, err, watson.ErrMissingCredentials)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCreateAuthenticator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *watson.Config
		want    interface{}
		wantErr error
	}{
		{
			name:   "static api key",
			config: &watson.Config{URL: "https://example.com", APIKey: "legacy"},
			want:   &auth.APIKeyAuthenticator{},
		},
		{
			name:   "icp static api key uses basic auth",
			config: &watson.Config{URL: "https://example.com", APIKey: "icp-legacy"},
			want:   &auth.BasicAuthenticator{},
		},
		{
			name:   "api key wins over username",
			config: &watson.Config{URL: "https://example.com", APIKey: "legacy", Username: "u", Password: "p"},
			want:   &auth.APIKeyAuthenticator{},
		},
		{
			name:   "username and password",
			config: &watson.Config{URL: "https://example.com", Username: "u", Password: "p"},
			want:   &auth.BasicAuthenticator{},
		},
		{
			name:   "apikey username means iam",
			config: &watson.Config{URL: "https://example.com", Username: "apikey", Password: "iam-key"},
			want:   &auth.BearerTokenAuthenticator{},
		},
		{
			name:   "apikey username with icp key stays basic",
			config: &watson.Config{URL: "https://example.com", Username: "apikey", Password: "icp-key"},
			want:   &auth.BasicAuthenticator{},
		},
		{
			name:   "iam api key",
			config: &watson.Config{URL: "https://example.com", IAMAPIKey: "iam-key"},
			want:   &auth.BearerTokenAuthenticator{},
		},
		{
			name:   "icp iam api key",
			config: &watson.Config{URL: "https://example.com", IAMAPIKey: "icp-key"},
			want:   &auth.BasicAuthenticator{},
		},
		{
			name:   "iam access token",
			config: &watson.Config{URL: "https://example.com", IAMAccessToken: "token"},
			want:   &auth.BearerTokenAuthenticator{},
		},
		{
			name:    "no credentials",
			config:  &watson.Config{URL: "https://example.com"},
			wantErr: watson.ErrMissingCredentials,
		},
		{
			name:    "braces in api key",
			config:  &watson.Config{URL: "https://example.com", IAMAPIKey: "{iam-key}"},
			wantErr: watson.ErrInvalidCredentialFormat,
		},
		{
			name:    "quotes in password",
			config:  &watson.Config{URL: "https://example.com", Username: "u", Password: "\"p\""},
			wantErr: watson.ErrInvalidCredentialFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := createAuthenticator(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestServiceTokenManager(t *testing.T) {
	t.Parallel()

	svc, err := newService(&watson.Config{URL: "https://example.com", IAMAccessToken: "token"}, serviceInfo{name: "test", version: "V1"})
	require.NoError(t, err)

	manager := svc.TokenManager()
	require.NotNil(t, manager)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	basic, err := newService(&watson.Config{URL: "https://example.com", Username: "u", Password: "p"}, serviceInfo{name: "test", version: "V1"})
	require.NoError(t, err)
	assert.Nil(t, basic.TokenManager())
}

func TestServiceRequestHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(jsonHandler(t, http.StatusOK, map[string]string{"ok": "yes"}, func(r *http.Request) {
		assert.Equal(t, "service_name=test;service_version=V1;operation_id=ping", r.Header.Get("X-IBMCloud-SDK-Analytics"))
		assert.Equal(t, testVersion, r.URL.Query().Get("version"))
		assert.Equal(t, "true", r.Header.Get("X-Watson-Learning-Opt-Out"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "watson-apis-go-sdk-"))

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", username)
		assert.Equal(t, "pass", password)
	}))
	defer server.Close()

	svc, err := newService(newTestConfig(server.URL), serviceInfo{name: "test", version: "V1", versioned: true})
	require.NoError(t, err)
	assert.Equal(t, server.URL, svc.ServiceURL())

	req := svc.newRequest(http.MethodGet, "/v1/ping", "ping", map[string]string{"X-Watson-Learning-Opt-Out": "true"})

	var result map[string]string

	resp, err := svc.invoke(context.Background(), req, &result)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "yes", result["ok"])
	assert.Equal(t, &result, resp.Result)
	assert.NotEmpty(t, resp.RawResult)
}

func TestServiceHTTPTimeout(t *testing.T) {
	t.Parallel()

	info := serviceInfo{name: "test", version: "V1"}

	svc, err := newService(&watson.Config{URL: "https://example.com", Username: "u", Password: "p"}, info)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultHTTPTimeout, svc.httpClient.Timeout())

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	config := newTestConfig(server.URL)
	config.HTTPTimeout = 50 * time.Millisecond

	svc, err = newService(config, info)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, svc.httpClient.Timeout())

	var result map[string]string

	_, err = svc.invoke(context.Background(), svc.newRequest(http.MethodGet, "/v1/slow", "slow", nil), &result)
	require.Error(t, err)
	assert.False(t, watson.IsNotFound(err))
}
