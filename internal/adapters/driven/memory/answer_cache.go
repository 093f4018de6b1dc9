// Package memory provides in-process fallback adapters used when Redis is
// not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AnswerCache = (*AnswerCache)(nil)

// AnswerCache is a map-backed AnswerCache with lazy TTL eviction. Expired
// entries are dropped on read.
type AnswerCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	answer    string
	expiresAt time.Time
}

// NewAnswerCache creates an in-process AnswerCache. A non-positive ttl
// disables expiry.
func NewAnswerCache(ttl time.Duration) *AnswerCache {
	return &AnswerCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached answer for a question, if present and unexpired.
func (c *AnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[question]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, question)
		c.mu.Unlock()
		return "", false, nil
	}
	return e.answer, true, nil
}

// Set stores an answer for a question.
func (c *AnswerCache) Set(ctx context.Context, question string, answer string) error {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[question] = entry{answer: answer, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}
