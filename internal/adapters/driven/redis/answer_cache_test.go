package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// setupTestCache creates a miniredis-backed AnswerCache
func setupTestCache(t *testing.T, ttl time.Duration) (*AnswerCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewAnswerCache(client, ttl)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestAnswerCache_SetGet(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, time.Minute)
	defer cleanup()

	ctx := context.Background()
	question := "How do I reset my password?"

	if err := cache.Set(ctx, question, "Visit the accounts office."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answer, ok, err := cache.Get(ctx, question)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if answer != "Visit the accounts office." {
		t.Errorf("unexpected answer: %q", answer)
	}
}

func TestAnswerCache_Miss(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, time.Minute)
	defer cleanup()

	_, ok, err := cache.Get(context.Background(), "never asked")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestAnswerCache_TTLExpiry(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t, time.Minute)
	defer cleanup()

	ctx := context.Background()
	if err := cache.Set(ctx, "q", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected entry to expire")
	}
}

func TestAnswerCache_DistinctQuestions(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, time.Minute)
	defer cleanup()

	ctx := context.Background()
	_ = cache.Set(ctx, "q1", "a1")
	_ = cache.Set(ctx, "q2", "a2")

	answer, ok, _ := cache.Get(ctx, "q1")
	if !ok || answer != "a1" {
		t.Errorf("expected a1, got %q (hit=%t)", answer, ok)
	}
	answer, ok, _ = cache.Get(ctx, "q2")
	if !ok || answer != "a2" {
		t.Errorf("expected a2, got %q (hit=%t)", answer, ok)
	}
}

func TestAnswerCache_DefaultTTL(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, 0)
	defer cleanup()

	if cache.ttl != DefaultTTL {
		t.Errorf("expected DefaultTTL, got %v", cache.ttl)
	}
}
