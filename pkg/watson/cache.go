package watson

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrCacheKeyNotFound  = errors.New("key not found")
	ErrCacheEntryExpired = errors.New("entry expired")
)

// Cache is a key/value store for short-lived data such as IAM tokens.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a cached value with its expiry.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the entry has passed its expiry.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// CacheOptions are shared by all cache backends.
type CacheOptions struct {
	// DefaultTTL applies to entries stored without an expiry.
	DefaultTTL time.Duration `json:"default_ttl,omitempty" yaml:"default_ttl,omitempty"`
	// KeyPrefix namespaces keys in shared backends.
	KeyPrefix string `json:"key_prefix,omitempty" yaml:"key_prefix,omitempty"`
}

// DefaultCacheOptions returns the default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		DefaultTTL: time.Hour,
		KeyPrefix:  "watson",
	}
}

// optionsCache applies CacheOptions on top of another backend.
type optionsCache struct {
	backend Cache
	options CacheOptions
}

// WithCacheOptions wraps cache so every key carries options.KeyPrefix and
// entries stored without an expiry get options.DefaultTTL. Clear is passed
// through and empties the whole backend.
func WithCacheOptions(cache Cache, options *CacheOptions) Cache {
	if options == nil {
		return cache
	}

	return &optionsCache{backend: cache, options: *options}
}

func (c *optionsCache) key(key string) string {
	if c.options.KeyPrefix == "" {
		return key
	}

	return c.options.KeyPrefix + ":" + key
}

func (c *optionsCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return c.backend.Get(ctx, c.key(key))
}

func (c *optionsCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if entry != nil && entry.ExpiresAt.IsZero() && c.options.DefaultTTL > 0 {
		stored := *entry
		stored.ExpiresAt = time.Now().Add(c.options.DefaultTTL)
		entry = &stored
	}

	return c.backend.Set(ctx, c.key(key), entry)
}

func (c *optionsCache) Delete(ctx context.Context, key string) error {
	return c.backend.Delete(ctx, c.key(key))
}

func (c *optionsCache) Clear(ctx context.Context) error {
	return c.backend.Clear(ctx)
}

func (c *optionsCache) Has(ctx context.Context, key string) bool {
	return c.backend.Has(ctx, c.key(key))
}

// MemoryCache is an in-process Cache bounded by entry count.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	order   []string
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get returns the entry for key.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheKeyNotFound
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, ErrCacheEntryExpired
	}

	return entry, nil
}

// Set stores entry under key, evicting the oldest key when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if _, exists := c.entries[key]; !exists {
		for len(c.order) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.order = append(c.order, key)
	}

	c.entries[key] = entry

	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleteLocked(key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// Cleanup drops expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			c.deleteLocked(key)
		}
	}
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *MemoryCache) deleteLocked(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}

	delete(c.entries, key)

	for i, existing := range c.order {
		if existing == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}
