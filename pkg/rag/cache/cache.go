package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"profile-chat-be/internal/pkg/logger"
)

// Store is a minimal key-value backend with expiry. Implementations must be
// safe for concurrent use; get/set are independent per key and last-write-wins
// is fine since values for the same key are derived identically.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Key derives the cache key for a query: hex sha256 of the lower-cased,
// trimmed text. Deterministic across restarts, so warm caches survive
// deploys.
func Key(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return hex.EncodeToString(sum[:])
}

const keyPrefix = "chat:"

// ResponseCache maps query hashes to prior final answers. A nil store is
// valid: every Get misses and every Set is a no-op. Backend failures degrade
// the same way and never fail the request.
type ResponseCache struct {
	store Store
	ttl   time.Duration
	log   logger.ILogger
}

func NewResponseCache(store Store, ttl time.Duration, log logger.ILogger) *ResponseCache {
	return &ResponseCache{
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

func (c *ResponseCache) Get(ctx context.Context, query string) (string, bool) {
	if c.store == nil {
		return "", false
	}

	key := keyPrefix + Key(query)
	value, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache", "get failed, treating as miss", map[string]interface{}{
			"error": err.Error(),
		})
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

func (c *ResponseCache) Set(ctx context.Context, query, answer string) {
	if c.store == nil {
		return
	}

	key := keyPrefix + Key(query)
	if err := c.store.Set(ctx, key, answer, c.ttl); err != nil {
		c.log.Warn("cache", "set failed, skipped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
