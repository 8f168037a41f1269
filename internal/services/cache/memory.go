package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryStore implements an in-memory cache store. It is used as the durable
// tier when no Redis address is configured.
type MemoryStore struct {
	mu          sync.RWMutex
	items       map[string]*memoryItem
	maxBytes    int64
	currentSize int64
	stats       Stats
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

type memoryItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryStore creates a new in-memory cache store bounded to maxSizeMB
func NewMemoryStore(maxSizeMB int64) *MemoryStore {
	ms := &MemoryStore{
		items:    make(map[string]*memoryItem),
		maxBytes: maxSizeMB * 1024 * 1024,
		stopCh:   make(chan struct{}),
	}

	ms.wg.Add(1)
	go ms.cleanupExpired()

	return ms
}

// Get retrieves a value from the cache
func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	ms.mu.RLock()
	item, exists := ms.items[key]
	ms.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&ms.stats.Misses, 1)
		return nil, false
	}

	if time.Now().After(item.expiry) {
		_ = ms.Delete(ctx, key)
		atomic.AddInt64(&ms.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&ms.stats.Hits, 1)
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (ms *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	size := int64(len(key) + len(value))
	ms.makeRoom(size)

	item := &memoryItem{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}

	ms.mu.Lock()
	if old, exists := ms.items[key]; exists {
		atomic.AddInt64(&ms.currentSize, -old.size)
	}
	ms.items[key] = item
	atomic.AddInt64(&ms.currentSize, size)
	ms.mu.Unlock()

	atomic.AddInt64(&ms.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	if item, exists := ms.items[key]; exists {
		delete(ms.items, key)
		atomic.AddInt64(&ms.currentSize, -item.size)
		atomic.AddInt64(&ms.stats.Deletes, 1)
	}
	ms.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (ms *MemoryStore) Clear(ctx context.Context) error {
	ms.mu.Lock()
	ms.items = make(map[string]*memoryItem)
	atomic.StoreInt64(&ms.currentSize, 0)
	ms.mu.Unlock()
	return nil
}

// Has checks if a key exists in the cache
func (ms *MemoryStore) Has(ctx context.Context, key string) bool {
	ms.mu.RLock()
	item, exists := ms.items[key]
	ms.mu.RUnlock()

	return exists && time.Now().Before(item.expiry)
}

// Stats returns cache statistics
func (ms *MemoryStore) Stats() Stats {
	stats := ms.stats
	stats.Size = atomic.LoadInt64(&ms.currentSize)
	stats.MaxSize = ms.maxBytes
	return stats
}

// Stop gracefully shuts down the store
func (ms *MemoryStore) Stop() {
	close(ms.stopCh)
	ms.wg.Wait()
}

// cleanupExpired removes expired items periodically
func (ms *MemoryStore) cleanupExpired() {
	defer ms.wg.Done()
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCh:
			return
		}
	}
}

// removeExpired removes all expired items
func (ms *MemoryStore) removeExpired() {
	now := time.Now()
	ms.mu.Lock()
	for key, item := range ms.items {
		if now.After(item.expiry) {
			delete(ms.items, key)
			atomic.AddInt64(&ms.currentSize, -item.size)
			atomic.AddInt64(&ms.stats.Evictions, 1)
		}
	}
	ms.mu.Unlock()
}

// makeRoom evicts entries until sizeNeeded fits within the configured bound
func (ms *MemoryStore) makeRoom(sizeNeeded int64) {
	currentSize := atomic.LoadInt64(&ms.currentSize)
	if ms.maxBytes <= 0 || currentSize+sizeNeeded <= ms.maxBytes {
		return
	}

	ms.removeExpired()

	currentSize = atomic.LoadInt64(&ms.currentSize)
	if currentSize+sizeNeeded > ms.maxBytes {
		ms.mu.Lock()
		targetSize := ms.maxBytes - sizeNeeded
		for key, item := range ms.items {
			if atomic.LoadInt64(&ms.currentSize) <= targetSize {
				break
			}
			delete(ms.items, key)
			atomic.AddInt64(&ms.currentSize, -item.size)
			atomic.AddInt64(&ms.stats.Evictions, 1)
		}
		ms.mu.Unlock()
	}
}
