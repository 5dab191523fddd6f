package credentials_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"order-reconciler/core/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu    sync.Mutex
	mints int
	err   error
}

func (p *fakeProvider) Mint(ctx context.Context, clientEmail, privateKey string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	p.mints++
	return fmt.Sprintf("token-%d", p.mints), nil
}

func TestCacheReturnsCachedTokenWithinWindow(t *testing.T) {
	provider := &fakeProvider{}
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := credentials.NewCache(provider, credentials.WithClock(func() time.Time { return now }))

	first, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	// Well within validity minus buffer: identical token, no second mint.
	now = now.Add(30 * time.Minute)
	second, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.mints)
}

func TestCacheRefreshesAfterExpiry(t *testing.T) {
	provider := &fakeProvider{}
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := credentials.NewCache(provider, credentials.WithClock(func() time.Time { return now }))

	_, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)

	// Past the validity window: exactly one new mint.
	now = now.Add(2 * time.Hour)
	refreshed, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, "token-2", refreshed)
	assert.Equal(t, 2, provider.mints)

	// Subsequent calls reuse the refreshed token.
	again, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, refreshed, again)
	assert.Equal(t, 2, provider.mints)
}

func TestCacheRefreshesWithinBuffer(t *testing.T) {
	provider := &fakeProvider{}
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := credentials.NewCache(provider,
		credentials.WithClock(func() time.Time { return now }),
		credentials.WithValidity(10*time.Minute),
		credentials.WithBuffer(time.Minute),
	)

	_, err := cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)

	// 30 seconds before expiry: inside the buffer, so refresh.
	now = now.Add(9*time.Minute + 30*time.Second)
	_, err = cache.Token(context.Background(), "svc@example.com", "key")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.mints)
}

func TestCachePropagatesMintFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider unavailable")}
	cache := credentials.NewCache(provider)

	_, err := cache.Token(context.Background(), "svc@example.com", "key")
	assert.Error(t, err)
}

func TestCacheConcurrentCallers(t *testing.T) {
	provider := &fakeProvider{}
	cache := credentials.NewCache(provider)

	var wg sync.WaitGroup
	tokens := make([]string, 16)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := cache.Token(context.Background(), "svc@example.com", "key")
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	// Every caller sees a complete token; a brief double mint is fine.
	for _, token := range tokens {
		assert.NotEmpty(t, token)
	}
}
