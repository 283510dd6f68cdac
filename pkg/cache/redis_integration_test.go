//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRedisCache_Integration(t *testing.T) {
	url := os.Getenv("PAGERANK_TEST_REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer c.Close()

	keyer := NewScopedKeyer(nil, "pagerank-test:"+uuid.NewString()+":")
	k := keyer.ResultKey("graph", ResultKeyOpts{Iterations: 100, Damping: 0.85})
	missing := keyer.ResultKey("other", ResultKeyOpts{Iterations: 100, Damping: 0.85})

	if _, hit, err := c.Get(ctx, missing); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, k, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, k)
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get(k) = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, k); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, k); hit {
		t.Error("entry should be gone after Delete")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url"); err == nil {
		t.Error("expected error for malformed url")
	}
}
