package assistantinfra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/pkg/logx"
)

const redisKeyPrefix = "assistant:reply:"

// RedisReplyCache implements assistant.ReplyCache on Redis, sharing
// cached replies across instances. Redis expiry replaces the lazy
// eviction of the in-process cache.
type RedisReplyCache struct {
	client *redis.Client
}

// NewRedisReplyCache creates a new Redis-backed reply cache
func NewRedisReplyCache(client *redis.Client) *RedisReplyCache {
	return &RedisReplyCache{
		client: client,
	}
}

// Get retrieves a cached reply. Redis errors degrade to misses.
func (c *RedisReplyCache) Get(ctx context.Context, userID kernel.UserID, message string) (*assistant.CachedReply, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+cacheKey(userID, message)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logx.Warnf("assistant: redis cache read failed: %v", err)
		}
		return nil, false
	}

	var reply assistant.CachedReply
	if err := json.Unmarshal(data, &reply); err != nil {
		logx.Warnf("assistant: corrupt cache entry: %v", err)
		return nil, false
	}

	return &reply, true
}

// Set stores a reply for the given TTL
func (c *RedisReplyCache) Set(ctx context.Context, userID kernel.UserID, message string, reply *assistant.CachedReply, ttl time.Duration) {
	data, err := json.Marshal(reply)
	if err != nil {
		logx.Warnf("assistant: failed to encode cache entry: %v", err)
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+cacheKey(userID, message), data, ttl).Err(); err != nil {
		logx.Warnf("assistant: redis cache write failed: %v", err)
	}
}
