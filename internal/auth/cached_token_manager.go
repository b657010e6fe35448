package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
)

// CachedTokenManager wraps IAMTokenManager and shares its tokens through a
// watson.Cache so that several clients or processes using the same API key
// reuse one IAM token.
type CachedTokenManager struct {
	iam    *IAMTokenManager
	cache  watson.Cache
	key    string
	logger watson.Logger

	mutex         sync.Mutex
	lastPersisted string
}

// NewCachedTokenManager creates a cache-backed token manager. logger may be nil.
func NewCachedTokenManager(config *IAMConfig, cache watson.Cache, logger watson.Logger) *CachedTokenManager {
	return &CachedTokenManager{
		iam:    NewIAMTokenManager(config),
		cache:  cache,
		key:    TokenCacheKey(config.APIKey),
		logger: logger,
	}
}

// TokenCacheKey derives the cache key for an API key without exposing it.
func TokenCacheKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))

	return "iam-token." + hex.EncodeToString(sum[:8])
}

// GetToken returns a valid access token, preferring a cached one over a new
// IAM request.
func (m *CachedTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.iam.Token().Valid() {
		m.loadFromCache(ctx)
	}

	token, err := m.iam.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfChanged(ctx)

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *CachedTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.iam.RefreshToken(ctx)
	if err != nil {
		return err
	}

	m.persistIfChanged(ctx)

	return nil
}

// Token returns the current token, or nil.
func (m *CachedTokenManager) Token() *Token {
	return m.iam.Token()
}

func (m *CachedTokenManager) loadFromCache(ctx context.Context) {
	entry, err := m.cache.Get(ctx, m.key)
	if err != nil {
		return
	}

	var token Token

	err = json.Unmarshal(entry.Data, &token)
	if err != nil {
		m.warn("discarding unreadable cached token", err)

		return
	}

	if token.Valid() {
		m.iam.SetToken(&token)
		m.lastPersisted = token.AccessToken
	}
}

func (m *CachedTokenManager) persistIfChanged(ctx context.Context) {
	token := m.iam.Token()
	if token == nil || token.AccessToken == m.lastPersisted {
		return
	}

	err := m.persistToken(ctx, token)
	if err != nil {
		m.warn("failed to persist refreshed token", err)

		return
	}

	m.lastPersisted = token.AccessToken
}

func (m *CachedTokenManager) persistToken(ctx context.Context, token *Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	expiresAt := token.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(time.Hour)
	}

	err = m.cache.Set(ctx, m.key, &watson.CacheEntry{
		Data:      data,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("caching token: %w", err)
	}

	return nil
}

func (m *CachedTokenManager) warn(msg string, err error) {
	if m.logger == nil {
		return
	}

	m.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
}
