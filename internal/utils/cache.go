package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheItem struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a small TTL wrapper over an LRU cache, used for read-side
// caching of hot queries like the category list.
type Cache struct {
	lru *lru.Cache[string, cacheItem]
}

func NewCache(size int) *Cache {
	l, err := lru.New[string, cacheItem](size)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	return &Cache{lru: l}
}

// Set stores a value with a TTL.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lru.Add(key, cacheItem{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached value, or nil when absent or expired.
func (c *Cache) Get(key string) interface{} {
	item, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(item.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return item.data
}

// Delete drops a key, typically after a mutation invalidates it.
func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}
