package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/watson/internal/constants"
	watsonhttp "github.com/fivetwenty-io/watson/internal/http"
)

// Static errors for err113 compliance.
var (
	ErrNoIAMCredentials = errors.New("no valid credentials available: an IAM API key or access token is required")
	ErrEmptyAccessToken = errors.New("IAM response did not contain an access token")
)

// TokenManager supplies bearer tokens.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
}

// IAMConfig configures an IAMTokenManager.
type IAMConfig struct {
	// APIKey is exchanged for tokens.
	APIKey string
	// AccessToken is a user-managed token. When set it is returned as-is
	// and never refreshed.
	AccessToken string
	// URL is the token endpoint. Defaults to the public IAM endpoint.
	URL string
	// ClientID and ClientSecret form the basic auth pair sent to IAM.
	// Both default to "bx".
	ClientID     string
	ClientSecret string
	// Options are applied to the HTTP client used for token requests.
	Options []watsonhttp.Option
}

// IAMTokenManager obtains and refreshes IAM access tokens. Token requests are
// made inline by the call that finds the token missing or due for refresh.
type IAMTokenManager struct {
	config     *IAMConfig
	store      *TokenStore
	httpClient *watsonhttp.Client

	// mu serializes token requests so concurrent callers share one fetch.
	mu sync.Mutex
}

// NewIAMTokenManager creates a token manager.
func NewIAMTokenManager(config *IAMConfig) *IAMTokenManager {
	cfg := *config
	if cfg.URL == "" {
		cfg.URL = constants.DefaultIAMURL
	}

	clientID, clientSecret := cfg.ClientID, cfg.ClientSecret
	if clientID == "" && clientSecret == "" {
		clientID, clientSecret = constants.IAMDefaultClientID, constants.IAMDefaultClientSecret
	}

	opts := append([]watsonhttp.Option{watsonhttp.WithTimeout(constants.ShortHTTPTimeout)}, cfg.Options...)

	return &IAMTokenManager{
		config:     &cfg,
		store:      NewTokenStore(),
		httpClient: watsonhttp.NewClient(cfg.URL, NewBasicAuthenticator(clientID, clientSecret), opts...),
	}
}

// GetToken returns a usable access token, requesting or refreshing one if
// needed.
func (m *IAMTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.AccessToken != "" {
		return m.config.AccessToken, nil
	}

	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.fetch(ctx, token)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// RefreshToken forces a new token regardless of the stored one's age.
func (m *IAMTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.AccessToken != "" {
		return nil
	}

	_, err := m.fetch(ctx, m.store.Get())

	return err
}

// SetAccessToken switches to a user-managed access token.
func (m *IAMTokenManager) SetAccessToken(accessToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config.AccessToken = accessToken
}

// SetToken seeds the store with a token obtained elsewhere.
func (m *IAMTokenManager) SetToken(token *Token) {
	token.normalize(time.Now())
	m.store.Set(token)
}

// Token returns the stored token, or nil.
func (m *IAMTokenManager) Token() *Token {
	return m.store.Get()
}

// fetch refreshes current when its refresh token is still usable and requests
// a new token with the API key otherwise.
func (m *IAMTokenManager) fetch(ctx context.Context, current *Token) (*Token, error) {
	var (
		token *Token
		err   error
	)

	if current.RefreshTokenUsable() {
		token, err = m.refreshToken(ctx, current.RefreshToken)
	} else {
		token, err = m.requestToken(ctx)
	}

	if err != nil {
		return nil, err
	}

	m.store.Set(token)

	return token, nil
}

func (m *IAMTokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.APIKey == "" {
		return nil, ErrNoIAMCredentials
	}

	form := url.Values{}
	form.Set("grant_type", constants.IAMRequestTokenGrantType)
	form.Set("apikey", m.config.APIKey)
	form.Set("response_type", constants.IAMRequestTokenResponseType)

	token, err := m.tokenRequest(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("requesting IAM token: %w", err)
	}

	return token, nil
}

func (m *IAMTokenManager) refreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", constants.IAMRefreshTokenGrantType)
	form.Set("refresh_token", refreshToken)

	token, err := m.tokenRequest(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("refreshing IAM token: %w", err)
	}

	return token, nil
}

func (m *IAMTokenManager) tokenRequest(ctx context.Context, form url.Values) (*Token, error) {
	resp, err := m.httpClient.Do(ctx, &watsonhttp.Request{
		Method:      http.MethodPost,
		Operation:   "iam_token",
		RawBody:     strings.NewReader(form.Encode()),
		ContentType: constants.ContentTypeFormURLEncoded,
	})
	if err != nil {
		return nil, err
	}

	var token Token

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	token.normalize(time.Now())

	return &token, nil
}
