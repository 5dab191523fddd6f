package credentials

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultValidity is how long a freshly minted token is considered
	// usable before the cache refreshes it.
	DefaultValidity = time.Hour
	// DefaultBuffer is the safety margin before expiry: a cached token
	// closer than this to its expiry is refreshed rather than reused.
	DefaultBuffer = 60 * time.Second
)

// Provider mints a fresh bearer token for the given issuer identity.
type Provider interface {
	Mint(ctx context.Context, clientEmail, privateKey string) (string, error)
}

// Cache holds one process-wide (token, expiry) pair and refreshes it lazily
// on the next call after expiry; there is no background refresh timer.
//
// The mint call runs outside the lock, so two concurrent expired callers may
// both mint (both tokens are valid, the last full write wins). A token is
// never partially visible.
type Cache struct {
	provider Provider
	validity time.Duration
	buffer   time.Duration
	now      func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock replaces the cache's clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithValidity overrides the validity window of minted tokens.
func WithValidity(d time.Duration) Option {
	return func(c *Cache) { c.validity = d }
}

// WithBuffer overrides the refresh safety margin.
func WithBuffer(d time.Duration) Option {
	return func(c *Cache) { c.buffer = d }
}

// NewCache creates an empty token cache backed by the given provider.
func NewCache(provider Provider, opts ...Option) *Cache {
	c := &Cache{
		provider: provider,
		validity: DefaultValidity,
		buffer:   DefaultBuffer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the cached token if it is still more than the buffer away
// from expiry, otherwise mints a new one, stores it with a fresh expiry and
// returns it.
func (c *Cache) Token(ctx context.Context, clientEmail, privateKey string) (string, error) {
	now := c.now()

	c.mu.Lock()
	if c.token != "" && c.expiresAt.After(now.Add(c.buffer)) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	token, err := c.provider.Mint(ctx, clientEmail, privateKey)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.expiresAt = now.Add(c.validity)
	c.mu.Unlock()

	return token, nil
}
