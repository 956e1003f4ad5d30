package launcher

import (
	"fmt"
	"log"
	"sync"

	"github.com/hashicorp/golang-lru/v2"
)

const defaultIconCacheSize = 64

// IconLoader decodes the image at path scaled to fit size x size
type IconLoader[T any] func(path string, size int) (T, error)

// IconCache keeps decoded tile icons keyed by path and size, so entries sharing
// an icon file decode it once. Failed loads are remembered as well.
type IconCache[T any] struct {
	cache     *lru.Cache[string, T]
	failed    map[string]error
	load      IconLoader[T]
	mu        sync.Mutex
	cacheHits int64
	cacheMiss int64
}

// NewIconCache creates an icon cache holding at most maxSize icons
func NewIconCache[T any](maxSize int, load IconLoader[T]) (*IconCache[T], error) {
	if load == nil {
		return nil, fmt.Errorf("icon loader is nil")
	}
	if maxSize <= 0 {
		maxSize = defaultIconCacheSize
	}

	cache, err := lru.New[string, T](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create icon cache: %w", err)
	}

	return &IconCache[T]{
		cache:  cache,
		failed: make(map[string]error),
		load:   load,
	}, nil
}

// GetIcon returns the icon at path, loading it on first use
func (ic *IconCache[T]) GetIcon(path string, size int) (T, error) {
	var zero T
	if path == "" {
		return zero, fmt.Errorf("empty icon path")
	}

	key := fmt.Sprintf("%s@%d", path, size)

	ic.mu.Lock()
	defer ic.mu.Unlock()

	if icon, ok := ic.cache.Get(key); ok {
		ic.cacheHits++
		return icon, nil
	}
	if err, ok := ic.failed[key]; ok {
		ic.cacheHits++
		return zero, err
	}
	ic.cacheMiss++

	icon, err := ic.load(path, size)
	if err != nil {
		log.Printf("[ICON-CACHE] Failed to load %s: %v", path, err)
		ic.failed[key] = err
		return zero, err
	}

	ic.cache.Add(key, icon)
	log.Printf("[ICON-CACHE] STORED: %s (cache size: %d)", key, ic.cache.Len())
	return icon, nil
}

// GetStats returns cache statistics
func (ic *IconCache[T]) GetStats() (hits, misses int, size int) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return int(ic.cacheHits), int(ic.cacheMiss), ic.cache.Len()
}

// Clear empties the cache
func (ic *IconCache[T]) Clear() {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	ic.cache.Purge()
	ic.failed = make(map[string]error)
}
