package assistantinfra

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/pkg/kernel"
)

// cacheKey builds the per-user reply cache key. Messages are
// normalized so casing and padding don't split cache entries.
func cacheKey(userID kernel.UserID, message string) string {
	return userID.String() + "::" + strings.ToLower(strings.TrimSpace(message))
}

type memoryEntry struct {
	reply     *assistant.CachedReply
	expiresAt time.Time
}

// MemoryReplyCache implements assistant.ReplyCache with an in-process
// map. Expired entries are evicted lazily on read.
type MemoryReplyCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryReplyCache creates a new in-process reply cache
func NewMemoryReplyCache() *MemoryReplyCache {
	return &MemoryReplyCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a cached reply. Expired entries count as misses.
func (c *MemoryReplyCache) Get(_ context.Context, userID kernel.UserID, message string) (*assistant.CachedReply, bool) {
	key := cacheKey(userID, message)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.reply, true
}

// Set stores a reply for the given TTL
func (c *MemoryReplyCache) Set(_ context.Context, userID kernel.UserID, message string, reply *assistant.CachedReply, ttl time.Duration) {
	key := cacheKey(userID, message)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		reply:     reply,
		expiresAt: c.now().Add(ttl),
	}
}

// Len reports the number of stored entries, expired ones included
func (c *MemoryReplyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
