package auth

import (
	"sync"
	"time"

	"github.com/fivetwenty-io/watson/internal/constants"
)

// Token is an IAM token response.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in,omitempty"`
	// Expiration is the expiry as a Unix timestamp.
	Expiration int64 `json:"expiration,omitempty"`
	// ExpiresAt is used for tokens that carry no IAM timing data.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// normalize fills Expiration from ExpiresIn when the server omitted it.
func (t *Token) normalize(now time.Time) {
	if t.Expiration == 0 && t.ExpiresIn > 0 {
		t.Expiration = now.Unix() + t.ExpiresIn
	}

	if t.ExpiresAt.IsZero() && t.Expiration > 0 {
		t.ExpiresAt = time.Unix(t.Expiration, 0)
	}
}

// RefreshAt is the moment the token should be replaced: once
// IAMTokenTTLFraction of its lifetime has elapsed.
func (t *Token) RefreshAt() time.Time {
	if t.Expiration > 0 {
		window := float64(t.ExpiresIn) * (1 - constants.IAMTokenTTLFraction)

		return time.Unix(t.Expiration, 0).Add(-time.Duration(window * float64(time.Second)))
	}

	return t.ExpiresAt
}

// Valid checks if the token is set and not yet due for refresh.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	refreshAt := t.RefreshAt()
	if refreshAt.IsZero() {
		return true
	}

	return time.Now().Before(refreshAt)
}

// RefreshTokenUsable reports whether the refresh token may still be
// exchanged. IAM accepts refresh tokens for a limited time after the access
// token expires.
func (t *Token) RefreshTokenUsable() bool {
	if t == nil || t.RefreshToken == "" {
		return false
	}

	expiry := t.ExpiresAt
	if t.Expiration > 0 {
		expiry = time.Unix(t.Expiration, 0)
	}

	if expiry.IsZero() {
		return true
	}

	return time.Now().Before(expiry.Add(constants.IAMRefreshTokenLifetime))
}

// TokenStore holds one token and is safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns a copy of the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil
	}

	token := *s.token

	return &token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
