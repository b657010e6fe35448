package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iamToken builds a token the way IAM reports one: lifetime in seconds plus
// an absolute Unix expiry.
func iamToken(lifetime, remaining time.Duration) *auth.Token {
	return &auth.Token{
		AccessToken: "access",
		TokenType:   "Bearer",
		ExpiresIn:   int64(lifetime / time.Second),
		Expiration:  time.Now().Add(remaining).Unix(),
	}
}

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token *auth.Token
		valid bool
	}{
		{"nil token", nil, false},
		{"empty access token", &auth.Token{ExpiresIn: 3600}, false},
		{"user-managed token without timing", &auth.Token{AccessToken: "access"}, true},
		{"just issued", iamToken(time.Hour, time.Hour), true},
		{"half of the lifetime used", iamToken(time.Hour, 30*time.Minute), true},
		{"inside the refresh window", iamToken(time.Hour, 10*time.Minute), false},
		{"expired", iamToken(time.Hour, -time.Minute), false},
		{"static expiry in the future", &auth.Token{AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour)}, true},
		{"static expiry in the past", &auth.Token{AccessToken: "a", ExpiresAt: time.Now().Add(-time.Second)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.token.Valid())
		})
	}
}

func TestToken_RefreshAt(t *testing.T) {
	t.Parallel()

	token := iamToken(time.Hour, time.Hour)
	expiry := time.Unix(token.Expiration, 0)

	// 80% of a one hour lifetime leaves a 12 minute window before expiry
	assert.WithinDuration(t, expiry.Add(-12*time.Minute), token.RefreshAt(), time.Millisecond)

	static := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	assert.Equal(t, static, (&auth.Token{ExpiresAt: static}).RefreshAt())

	assert.True(t, (&auth.Token{}).RefreshAt().IsZero())
}

func TestToken_RefreshTokenUsable(t *testing.T) {
	t.Parallel()

	now := time.Now()

	var missing *auth.Token
	assert.False(t, missing.RefreshTokenUsable())

	assert.False(t, (&auth.Token{AccessToken: "a"}).RefreshTokenUsable())
	assert.True(t, (&auth.Token{RefreshToken: "r"}).RefreshTokenUsable())

	recent := &auth.Token{RefreshToken: "r", Expiration: now.Add(-6 * 24 * time.Hour).Unix()}
	assert.True(t, recent.RefreshTokenUsable())

	stale := &auth.Token{RefreshToken: "r", Expiration: now.Add(-8 * 24 * time.Hour).Unix()}
	assert.False(t, stale.RefreshTokenUsable())

	staleStatic := &auth.Token{RefreshToken: "r", ExpiresAt: now.Add(-8 * 24 * time.Hour)}
	assert.False(t, staleStatic.RefreshTokenUsable())
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())

	store.Set(iamToken(time.Hour, time.Hour))

	// Get hands out copies
	first := store.Get()
	require.NotNil(t, first)
	first.AccessToken = "mutated"
	assert.Equal(t, "access", store.Get().AccessToken)

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	var waitGroup sync.WaitGroup

	for _, value := range []string{"token-1", "token-2", "token-3"} {
		waitGroup.Add(2)

		go func() {
			defer waitGroup.Done()

			for range 100 {
				store.Set(&auth.Token{AccessToken: value})
			}
		}()

		go func() {
			defer waitGroup.Done()

			for range 100 {
				if token := store.Get(); token != nil {
					_ = token.Valid()
				}
			}
		}()
	}

	waitGroup.Wait()

	assert.Contains(t, []string{"token-1", "token-2", "token-3"}, store.Get().AccessToken)
}
