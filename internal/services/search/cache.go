package search

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/noovas/games-catalog-api/internal/services/cache"
)

// DefaultResultTTL is how long a computed result stays valid in both tiers
const DefaultResultTTL = 300 * time.Second

// ResultCache memoizes complete search results under their criteria-derived
// key. It has two tiers: a process-local map (no serialization, lives for the
// process) checked first, and an optional durable store with TTL checked
// second. A durable hit is promoted into the local tier. Store failures are
// treated as misses; they never reach the caller.
//
// Two concurrent requests missing on the same key both run compute. Results
// are idempotent, so the redundant computation is harmless and cheaper than
// serializing on a lock.
type ResultCache struct {
	mu      sync.RWMutex
	local   map[string]localEntry
	durable cache.Store // may be nil
	ttl     time.Duration
}

type localEntry struct {
	result    Result
	expiresAt time.Time
}

// NewResultCache creates a result cache backed by the given durable store.
// Pass nil for a process-local-only cache.
func NewResultCache(durable cache.Store, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{
		local:   make(map[string]localEntry),
		durable: durable,
		ttl:     ttl,
	}
}

// GetOrCompute returns the cached result for key, computing and storing it on
// a miss. Empty results are cached exactly like non-empty ones; only a
// compute error skips the store, so an outage is never frozen into the cache.
func (rc *ResultCache) GetOrCompute(ctx context.Context, key string, compute func() (Result, error)) (Result, error) {
	if result, ok := rc.getLocal(key); ok {
		return result, nil
	}

	if result, ok := rc.getDurable(ctx, key); ok {
		rc.setLocal(key, result)
		return result, nil
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	rc.setLocal(key, result)
	rc.setDurable(ctx, key, result)
	return result, nil
}

// Clear drops the process-local tier. The durable tier self-expires via TTL.
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	rc.local = make(map[string]localEntry)
	rc.mu.Unlock()
}

// LocalLen returns the number of live process-local entries
func (rc *ResultCache) LocalLen() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.local)
}

func (rc *ResultCache) getLocal(key string) (Result, bool) {
	rc.mu.RLock()
	entry, exists := rc.local[key]
	rc.mu.RUnlock()

	if !exists || entry.expiresAt.Before(time.Now()) {
		return Result{}, false
	}
	return entry.result.clone(), true
}

func (rc *ResultCache) setLocal(key string, result Result) {
	rc.mu.Lock()
	rc.local[key] = localEntry{
		result:    result.clone(),
		expiresAt: time.Now().Add(rc.ttl),
	}
	rc.mu.Unlock()
}

func (rc *ResultCache) getDurable(ctx context.Context, key string) (Result, bool) {
	if rc.durable == nil {
		return Result{}, false
	}

	data, found := rc.durable.Get(ctx, key)
	if !found {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("[WARN] Dropping corrupt cached result for %s: %v", key, err)
		_ = rc.durable.Delete(ctx, key)
		return Result{}, false
	}
	if result.GameIDs == nil {
		result.GameIDs = []int{}
	}
	return result, true
}

func (rc *ResultCache) setDurable(ctx context.Context, key string, result Result) {
	if rc.durable == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[WARN] Failed to serialize result for %s: %v", key, err)
		return
	}
	if err := rc.durable.Set(ctx, key, data, rc.ttl); err != nil {
		// Degrade to process-local caching only
		log.Printf("[WARN] Durable cache store failed for %s: %v", key, err)
	}
}
