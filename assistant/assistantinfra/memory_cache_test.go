package assistantinfra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/pkg/kernel"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryReplyCache()
	ctx := context.Background()
	userID := kernel.UserID("user-1")

	cache.Set(ctx, userID, "Find Jobs In Pune", &assistant.CachedReply{Reply: "here you go"}, time.Minute)

	// Lookup normalizes casing and padding
	got, ok := cache.Get(ctx, userID, "  find jobs in pune ")
	require.True(t, ok)
	assert.Equal(t, "here you go", got.Reply)

	// Entries are scoped per user
	_, ok = cache.Get(ctx, kernel.UserID("user-2"), "find jobs in pune")
	assert.False(t, ok)
}

func TestMemoryCacheExpiryEvictsOnRead(t *testing.T) {
	cache := NewMemoryReplyCache()
	ctx := context.Background()
	userID := kernel.UserID("user-1")

	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set(ctx, userID, "hello", &assistant.CachedReply{Reply: "hi"}, 5*time.Minute)

	now = now.Add(5*time.Minute + time.Second)

	_, ok := cache.Get(ctx, userID, "hello")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCacheOverwrite(t *testing.T) {
	cache := NewMemoryReplyCache()
	ctx := context.Background()
	userID := kernel.UserID("user-1")

	cache.Set(ctx, userID, "hello", &assistant.CachedReply{Reply: "first"}, time.Minute)
	cache.Set(ctx, userID, "hello", &assistant.CachedReply{Reply: "second"}, time.Minute)

	got, ok := cache.Get(ctx, userID, "hello")
	require.True(t, ok)
	assert.Equal(t, "second", got.Reply)
	assert.Equal(t, 1, cache.Len())
}
