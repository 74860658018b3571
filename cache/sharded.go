// Package cache provides a sharded, thread-safe lookup cache keyed by
// small hardware words. The geometry pipeline uses it to memoize vertex
// decoders per vertex-type word, so repeated draws with the same format
// skip decoder construction.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (ShardCount - 1).
	shardMask = ShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Sharded for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes an FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Uint32Hasher computes an FNV-1a hash of a 32-bit key. Hardware words
// cluster in their low bits, so identity hashing would load a few shards
// only.
func Uint32Hasher(u uint32) uint64 {
	h := fnv.New64a()
	buf := [4]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 {
	return u
}

// Stats holds cache statistics.
type Stats struct {
	Len           int     // current entries across all shards
	Capacity      int     // per-shard capacity
	TotalCapacity int     // capacity across all shards
	Hits          uint64  // lookups that found an entry
	Misses        uint64  // lookups that did not
	HitRate       float64 // hits / (hits + misses)
	Evictions     uint64  // entries discarded by shard resets
}

// Sharded is a thread-safe, sharded lookup cache.
//
// Eviction is generational: when a shard is full, inserting into it
// discards the whole shard. Vertex-type words repeat heavily within a
// frame and change wholesale between scenes, so a full shard signals
// turnover rather than steady mixed use, and a reset is cheaper than
// tracking recency per entry.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // per-shard capacity

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a single shard of the cache. Each shard has its own mutex for
// reduced contention.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates a sharded cache with the specified capacity per
// shard. Total capacity is capacity * ShardCount.
//
// The hasher computes hash values for shard selection. Use StringHasher,
// Uint32Hasher, or Uint64Hasher for common key types.
//
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return c
}

// getShard returns the shard for a given key.
// Uses bitwise AND for fast modulo (only works with power-of-2 shard count).
func (c *Sharded[K, V]) getShard(key K) *shard[K, V] {
	hash := c.hasher(key)
	return c.shards[hash&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	sh := c.getShard(key)

	sh.mu.RLock()
	value, ok := sh.entries[key]
	sh.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache. If the shard is full and the key is
// new, the shard is reset first.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *Sharded[K, V]) Set(key K, value V) {
	sh := c.getShard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	c.insert(sh, key, value)
}

// insert stores an entry with the shard lock held, resetting the shard if
// a new key would push it past capacity.
func (c *Sharded[K, V]) insert(sh *shard[K, V], key K, value V) {
	if _, ok := sh.entries[key]; !ok && len(sh.entries) >= c.capacity {
		c.evictions.Add(uint64(len(sh.entries)))
		sh.entries = make(map[K]V, c.capacity)
	}
	sh.entries[key] = value
}

// GetOrCreate returns the cached value for key, or builds, caches and
// returns it using create. This is the preferred lookup: it prevents
// duplicate construction when several goroutines miss on the same key.
//
// create runs with the shard lock held, so keep it fast. If create fails,
// nothing is cached and the error is returned.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	sh := c.getShard(key)

	// Fast path: read lock.
	sh.mu.RLock()
	value, ok := sh.entries[key]
	sh.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return value, nil
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	// Re-check after acquiring the write lock.
	if value, ok := sh.entries[key]; ok {
		c.hits.Add(1)
		return value, nil
	}

	c.misses.Add(1)
	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(sh, key, value)
	return value, nil
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Sharded[K, V]) Delete(key K) bool {
	sh := c.getShard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.entries[key]; !ok {
		return false
	}
	delete(sh.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *Sharded[K, V]) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.entries = make(map[K]V)
		sh.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Sharded[K, V]) Capacity() int {
	return c.capacity
}

// TotalCapacity returns the total capacity across all shards.
func (c *Sharded[K, V]) TotalCapacity() int {
	return c.capacity * ShardCount
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (c *Sharded[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, sh := range c.shards {
		sh.mu.RLock()
		lens[i] = len(sh.entries)
		sh.mu.RUnlock()
	}
	return lens
}

// Stats returns current cache statistics.
// This operation is mostly lock-free (atomic counters).
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
