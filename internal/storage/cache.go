package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedRecordStore is a read-through cache in front of a slower RecordStore.
// Writes go to the backend first and only then update the cache.
type CachedRecordStore struct {
	next RecordStore
	lru  *expirable.LRU[string, []byte]
}

// NewCachedRecordStore wraps next with an expiring LRU of the given size and TTL
func NewCachedRecordStore(next RecordStore, size int, ttl time.Duration) *CachedRecordStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedRecordStore{
		next: next,
		lru:  expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Get serves from the cache, falling back to the backend on a miss
func (c *CachedRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if data, ok := c.lru.Get(key); ok {
		return data, true, nil
	}

	data, found, err := c.next.Get(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}
	c.lru.Add(key, data)
	return data, true, nil
}

// PutAll writes through to the backend
func (c *CachedRecordStore) PutAll(ctx context.Context, records map[string][]byte) error {
	if err := c.next.PutAll(ctx, records); err != nil {
		for key := range records {
			c.lru.Remove(key)
		}
		return err
	}
	for key, data := range records {
		c.lru.Add(key, data)
	}
	return nil
}

// DeleteAll removes the keys from the backend and the cache
func (c *CachedRecordStore) DeleteAll(ctx context.Context, keys []string) error {
	for _, key := range keys {
		c.lru.Remove(key)
	}
	return c.next.DeleteAll(ctx, keys)
}

// Purge drops every cached entry
func (c *CachedRecordStore) Purge() {
	c.lru.Purge()
}
