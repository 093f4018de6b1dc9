// Package redis provides Redis-backed adapters.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AnswerCache = (*AnswerCache)(nil)

const answerPrefix = "answer:"

// DefaultTTL bounds how long a cached answer is served. The index never
// changes within a process lifetime, so this only limits memory, not
// staleness.
const DefaultTTL = time.Hour

// AnswerCache implements driven.AnswerCache using Redis.
// Entries expire via Redis TTL.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnswerCache creates a Redis-backed AnswerCache. A non-positive ttl
// falls back to DefaultTTL.
func NewAnswerCache(client *redis.Client, ttl time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AnswerCache{client: client, ttl: ttl}
}

// Get returns the cached answer for a question, if present.
func (c *AnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	answer, err := c.client.Get(ctx, answerKey(question)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return answer, true, nil
}

// Set stores an answer for a question with the configured TTL.
func (c *AnswerCache) Set(ctx context.Context, question string, answer string) error {
	if err := c.client.Set(ctx, answerKey(question), answer, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// answerKey hashes the question so arbitrary user text never appears in key
// space.
func answerKey(question string) string {
	sum := sha256.Sum256([]byte(question))
	return answerPrefix + hex.EncodeToString(sum[:])
}
