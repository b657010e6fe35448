package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
)

// BasicAuthenticator sends HTTP basic credentials.
type BasicAuthenticator struct {
	username string
	password string
}

// NewBasicAuthenticator creates a basic auth authenticator.
func NewBasicAuthenticator(username, password string) *BasicAuthenticator {
	return &BasicAuthenticator{username: username, password: password}
}

// Authenticate sets the Authorization header.
func (a *BasicAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	req.SetBasicAuth(a.username, a.password)

	return nil
}

// BearerTokenAuthenticator sends a bearer token from a TokenManager.
type BearerTokenAuthenticator struct {
	manager TokenManager
}

// NewBearerTokenAuthenticator creates a bearer authenticator.
func NewBearerTokenAuthenticator(manager TokenManager) *BearerTokenAuthenticator {
	return &BearerTokenAuthenticator{manager: manager}
}

// Authenticate sets the Authorization header, fetching a token if needed.
func (a *BearerTokenAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	token, err := a.manager.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("getting access token: %w", err)
	}

	req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)

	return nil
}

// TokenManager returns the wrapped token manager.
func (a *BearerTokenAuthenticator) TokenManager() TokenManager {
	return a.manager
}

// APIKeyAuthenticator sends a legacy static API key as a query parameter.
type APIKeyAuthenticator struct {
	apiKey    string
	paramName string
}

// NewAPIKeyAuthenticator creates an API key authenticator. The parameter name
// is "apikey" for the legacy gateway-a host and "api_key" elsewhere.
func NewAPIKeyAuthenticator(apiKey string, serviceURL string) *APIKeyAuthenticator {
	paramName := constants.APIKeyQueryParam
	if strings.HasPrefix(serviceURL, constants.GatewayAURLPrefix) {
		paramName = constants.GatewayAPIKeyQueryParam
	}

	return &APIKeyAuthenticator{apiKey: apiKey, paramName: paramName}
}

// ParamName returns the query parameter carrying the key.
func (a *APIKeyAuthenticator) ParamName() string {
	return a.paramName
}

// Authenticate adds the key to the query string.
func (a *APIKeyAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	query := req.URL.Query()
	query.Set(a.paramName, a.apiKey)
	req.URL.RawQuery = query.Encode()

	return nil
}
