// Package cache provides the caching layer for admin API responses.
//
// Two implementations are available: a BadgerDB-backed persistent cache
// (the default for the running application) and a JSON file cache with LRU
// eviction that doubles as an in-memory cache for tests.
package cache

import (
	"container/list"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bundletui/internal/config"
	"bundletui/internal/logger"
	"bundletui/pkg/api/interfaces"
)

// Cache defines the interface for the caching system.
type Cache interface {
	// Get retrieves data from the cache, returning whether it was found
	Get(key string, dest interface{}) (bool, error)

	// Set stores data in the cache with optional TTL
	Set(key string, data interface{}, ttl time.Duration) error

	// Delete removes an item from the cache
	Delete(key string) error

	// Clear removes all items from the cache
	Clear() error

	// Close closes the cache and releases any resources
	Close() error
}

// CacheItem represents an item in the cache with TTL.
type CacheItem struct {
	Data      json.RawMessage `json:"data"` // Store as raw JSON to avoid double marshaling
	Timestamp int64           `json:"timestamp"`
	TTL       int64           `json:"ttl"` // TTL in seconds, 0 means no expiration
}

// FileCache implements a simple file-based cache with LRU eviction.
type FileCache struct {
	dir       string
	mutex     sync.RWMutex
	inMemory  map[string]*list.Element // Map key to list element
	lruList   *list.List               // Doubly-linked list for LRU tracking
	maxSize   int                      // Maximum number of items (0 = unlimited)
	persisted bool
}

// lruEntry represents an entry in the LRU cache.
type lruEntry struct {
	key  string
	item *CacheItem
}

// NewFileCache creates a new file-based cache with optional size limit.
func NewFileCache(cacheDir string, persisted bool) (*FileCache, error) {
	return NewFileCacheWithSize(cacheDir, persisted, 0)
}

// NewFileCacheWithSize creates a new file-based cache with a maximum size limit.
// When the cache exceeds maxSize items, least recently used items are evicted.
// maxSize of 0 means unlimited cache size.
func NewFileCacheWithSize(cacheDir string, persisted bool, maxSize int) (*FileCache, error) {
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &FileCache{
		dir:       cacheDir,
		inMemory:  make(map[string]*list.Element),
		lruList:   list.New(),
		maxSize:   maxSize,
		persisted: persisted,
	}

	if persisted {
		if err := cache.loadCacheFiles(); err != nil {
			// Non-fatal error, just log it
			getCacheLogger().Debug("Warning: Failed to load cache files: %v", err)
		}
	}

	return cache, nil
}

// loadCacheFiles loads all existing cache files into memory.
func (c *FileCache) loadCacheFiles() error {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		key := file.Name()[:len(file.Name())-5] // Remove .json extension

		data, err := os.ReadFile(filepath.Join(c.dir, file.Name()))
		if err != nil {
			getCacheLogger().Debug("Warning: Failed to read cache file %s: %v", file.Name(), err)

			continue
		}

		var item CacheItem
		if err := json.Unmarshal(data, &item); err != nil {
			getCacheLogger().Debug("Warning: Failed to parse cache file %s: %v", file.Name(), err)

			continue
		}

		if item.TTL > 0 && time.Now().Unix()-item.Timestamp > item.TTL {
			if err := os.Remove(filepath.Join(c.dir, file.Name())); err != nil {
				getCacheLogger().Debug("Warning: Failed to remove expired cache file %s: %v", file.Name(), err)
			}

			continue
		}

		entry := &lruEntry{key: key, item: &item}
		element := c.lruList.PushFront(entry)
		c.inMemory[key] = element
	}

	return nil
}

// Get retrieves data from the cache and updates LRU order.
func (c *FileCache) Get(key string, dest interface{}) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.inMemory[key]
	if !exists {
		getCacheLogger().Debug("Cache miss for: %s", key)

		return false, nil
	}

	entry := element.Value.(*lruEntry)
	item := entry.item

	if item.TTL > 0 && time.Now().Unix()-item.Timestamp > item.TTL {
		c.lruList.Remove(element)
		delete(c.inMemory, key)
		getCacheLogger().Debug("Cache item expired: %s", key)

		if c.persisted {
			filePath := filepath.Join(c.dir, key+".json")
			if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
				return false, fmt.Errorf("failed to remove expired cache file: %w", err)
			}
		}

		return false, nil
	}

	// Move to front (most recently used)
	c.lruList.MoveToFront(element)

	getCacheLogger().Debug("Cache hit for: %s", key)

	// Unmarshal the raw JSON directly into the destination (no double marshaling)
	if err := json.Unmarshal(item.Data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return true, nil
}

// Set stores data in the cache.
func (c *FileCache) Set(key string, data interface{}, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	item := &CacheItem{
		Data:      jsonData,
		Timestamp: time.Now().Unix(),
		TTL:       int64(ttl.Seconds()),
	}

	if element, exists := c.inMemory[key]; exists {
		entry := element.Value.(*lruEntry)
		entry.item = item
		c.lruList.MoveToFront(element)
	} else {
		entry := &lruEntry{key: key, item: item}
		element := c.lruList.PushFront(entry)
		c.inMemory[key] = element

		// Evict least recently used item if cache is full
		if c.maxSize > 0 && c.lruList.Len() > c.maxSize {
			c.evictLRU()
		}
	}

	if c.persisted {
		bytes, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal cache item: %w", err)
		}

		filePath := filepath.Join(c.dir, key+".json")
		if err := os.WriteFile(filePath, bytes, 0o600); err != nil {
			return fmt.Errorf("failed to write cache file: %w", err)
		}
	}

	getCacheLogger().Debug("Cached item: %s with TTL %v", key, ttl)

	return nil
}

// evictLRU removes the least recently used item from the cache.
// Must be called with mutex held.
func (c *FileCache) evictLRU() {
	element := c.lruList.Back()
	if element == nil {
		return
	}

	entry := element.Value.(*lruEntry)
	c.lruList.Remove(element)
	delete(c.inMemory, entry.key)

	getCacheLogger().Debug("Evicted LRU item: %s (cache size limit: %d)", entry.key, c.maxSize)

	if c.persisted {
		filePath := filepath.Join(c.dir, entry.key+".json")
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			getCacheLogger().Debug("Failed to remove evicted cache file: %v", err)
		}
	}
}

// Delete removes an item from the cache.
func (c *FileCache) Delete(key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.inMemory[key]; exists {
		c.lruList.Remove(element)
		delete(c.inMemory, key)
	}

	if c.persisted {
		filePath := filepath.Join(c.dir, key+".json")
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove cache file: %w", err)
		}
	}

	getCacheLogger().Debug("Deleted cache item: %s", key)

	return nil
}

// Clear removes all items from the cache.
func (c *FileCache) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.inMemory = make(map[string]*list.Element)
	c.lruList = list.New()

	if c.persisted {
		files, err := os.ReadDir(c.dir)
		if err != nil {
			return fmt.Errorf("failed to read cache directory: %w", err)
		}

		for _, file := range files {
			if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
				continue
			}

			if err := os.Remove(filepath.Join(c.dir, file.Name())); err != nil {
				return fmt.Errorf("failed to remove cache file %s: %w", file.Name(), err)
			}
		}
	}

	return nil
}

// Close implements the Cache.Close method for FileCache.
// This is a no-op since FileCache holds no resources that need explicit closing.
func (c *FileCache) Close() error {
	return nil
}

// NewMemoryCache creates an in-memory only cache (no persistence).
func NewMemoryCache() *FileCache {
	return &FileCache{
		inMemory:  make(map[string]*list.Element),
		lruList:   list.New(),
		maxSize:   0, // Unlimited
		persisted: false,
	}
}

// NewMemoryCacheWithSize creates an in-memory cache with a size limit.
func NewMemoryCacheWithSize(maxSize int) *FileCache {
	return &FileCache{
		inMemory:  make(map[string]*list.Element),
		lruList:   list.New(),
		maxSize:   maxSize,
		persisted: false,
	}
}

// Global singleton cache instance.
var (
	globalCache     Cache
	cacheLogger     interfaces.Logger
	globalCacheDir  string
	once            sync.Once
	cacheLoggerOnce sync.Once
)

// getCacheLogger returns the cache logger, initializing it if necessary.
func getCacheLogger() interfaces.Logger {
	cacheLoggerOnce.Do(func() {
		level := logger.LevelInfo
		if config.DebugEnabled {
			level = logger.LevelDebug
		}

		var err error

		cacheDir := globalCacheDir
		if cacheDir == "" {
			cacheDir = "."
		}

		cacheLogger, err = logger.NewInternalLogger(level, cacheDir)
		if err != nil {
			cacheLogger = logger.NewSimpleLogger(level)
		}
	})

	return cacheLogger
}

// InitGlobalCache initializes the global cache with the given directory.
func InitGlobalCache(cacheDir string) error {
	var err error

	once.Do(func() {
		globalCacheDir = cacheDir

		if err = os.MkdirAll(cacheDir, 0o750); err != nil {
			err = fmt.Errorf("failed to create cache directory: %w", err)

			return
		}

		badgerDir := filepath.Join(cacheDir, "badger")
		if err = os.MkdirAll(badgerDir, 0o750); err != nil {
			err = fmt.Errorf("failed to create badger directory: %w", err)

			return
		}

		lockFilePath := filepath.Join(badgerDir, "LOCK")
		lockFileExists := false

		if _, statErr := os.Stat(lockFilePath); statErr == nil {
			lockFileExists = true

			getCacheLogger().Debug("Found existing BadgerDB lock file")
		}

		getCacheLogger().Debug("Attempting to initialize BadgerDB cache at %s", badgerDir)

		badgerCache, badgerErr := NewBadgerCache(badgerDir)
		if badgerErr != nil {
			// Lock contention from another running instance resolves quickly
			if lockFileExists {
				getCacheLogger().Debug("Lock contention detected, waiting for lock release...")
				time.Sleep(500 * time.Millisecond)

				badgerCache, badgerErr = NewBadgerCache(badgerDir)
			}

			if badgerErr != nil {
				getCacheLogger().Debug("Failed to initialize BadgerDB cache: %v", badgerErr)
				getCacheLogger().Debug("Using temporary in-memory cache - no persistence will be available")

				globalCache = NewMemoryCache()
				err = badgerErr

				return
			}
		}

		getCacheLogger().Debug("Successfully initialized BadgerDB cache")

		globalCache = badgerCache
	})

	return err
}

// GetGlobalCache returns the global cache instance.
func GetGlobalCache() Cache {
	if globalCache == nil {
		globalCache = NewMemoryCache()
	}

	return globalCache
}
