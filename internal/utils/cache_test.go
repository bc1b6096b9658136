package utils

import (
	"testing"
	"time"
)

func TestCacheSetGetDelete(t *testing.T) {
	cache := NewCache(8)

	cache.Set("k", []string{"General"}, time.Minute)
	if got := cache.Get("k"); got == nil {
		t.Fatal("expected cached value")
	}

	cache.Delete("k")
	if got := cache.Get("k"); got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}

	if got := cache.Get("missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(8)

	cache.Set("k", 1, -time.Second) // already expired
	if got := cache.Get("k"); got != nil {
		t.Errorf("expected expired entry to read as nil, got %v", got)
	}
}
