package assistantinfra_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/assistantinfra"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
)

func newRedisCache(t *testing.T) (*assistantinfra.RedisReplyCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return assistantinfra.NewRedisReplyCache(client), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, _ := newRedisCache(t)
	ctx := context.Background()
	userID := kernel.UserID("user-1")

	stored := &assistant.CachedReply{
		Reply:    "two openings in Pune",
		Location: "Pune",
		Mode:     assistant.ModeAIPowered,
		Jobs: []assistant.JobSummary{
			{ID: "j1", Title: "Backend Developer", Company: job.Company{Name: "Acme"}, Location: "Pune", SalaryLPA: 18},
		},
	}
	cache.Set(ctx, userID, "Find Jobs in Pune", stored, time.Minute)

	got, ok := cache.Get(ctx, userID, "find jobs in pune")
	require.True(t, ok)
	assert.Equal(t, stored.Reply, got.Reply)
	assert.Equal(t, stored.Location, got.Location)
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, "Backend Developer", got.Jobs[0].Title)
}

func TestRedisCacheMiss(t *testing.T) {
	cache, _ := newRedisCache(t)

	_, ok := cache.Get(context.Background(), kernel.UserID("user-1"), "never stored")
	assert.False(t, ok)
}

func TestRedisCacheExpiry(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()
	userID := kernel.UserID("user-1")

	cache.Set(ctx, userID, "hello", &assistant.CachedReply{Reply: "hi"}, 5*time.Minute)

	mr.FastForward(5*time.Minute + time.Second)

	_, ok := cache.Get(ctx, userID, "hello")
	assert.False(t, ok)
}
