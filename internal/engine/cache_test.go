package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("lists", "catalog")
	b := CacheKey("lists", "catalog")
	c := CacheKey("lists", "other")
	if a != b {
		t.Errorf("same parts produced different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different parts produced identical keys: %q", a)
	}
	if len(a) != len("gt:")+24 {
		t.Errorf("unexpected key length: %q", a)
	}
}

func TestCacheSetGet(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("t", "set-get")
	if _, ok := CacheGet(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	CacheSet(ctx, key, []byte("payload"))
	data, ok := CacheGet(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want %q", data, "payload")
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("t", "expiry")
	CacheSet(ctx, key, []byte("x"))
	time.Sleep(25 * time.Millisecond)
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheEviction(t *testing.T) {
	InitCache("", time.Minute, 3, time.Minute)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c", "d", "e"} {
		CacheSet(ctx, CacheKey("evict", k), []byte(k))
	}

	count := 0
	listCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 3 {
		t.Errorf("L1 holds %d entries, want at most 3", count)
	}
}
