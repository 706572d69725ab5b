package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestFileCache_SetGet tests basic set and get operations for FileCache
func TestFileCache_SetGet(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, true)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	type data struct{ Name string }
	key := "test-key"
	expected := data{Name: "value"}

	if err := c.Set(key, expected, time.Minute); err != nil {
		t.Fatalf("set error: %v", err)
	}

	var got data
	found, err := c.Get(key, &got)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !found {
		t.Fatalf("expected item not found")
	}
	if got != expected {
		t.Fatalf("expected %v got %v", expected, got)
	}

	// Ensure file exists for persistence
	if _, err := os.Stat(filepath.Join(dir, key+".json")); err != nil {
		t.Fatalf("expected cache file: %v", err)
	}
}

// TestFileCache_TTL verifies that expired items are not returned
func TestFileCache_TTL(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), false)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	if err := c.Set("k", "v", time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var s string
	found, err := c.Get("k", &s)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected item to be expired")
	}
}

// TestFileCache_Persistence ensures data is loaded from disk when persisted
func TestFileCache_Persistence(t *testing.T) {
	dir := t.TempDir()
	c1, err := NewFileCache(dir, true)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	if err := c1.Set("persist", "value", time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	c2, err := NewFileCache(dir, true)
	if err != nil {
		t.Fatalf("failed to create second cache: %v", err)
	}

	var s string
	found, err := c2.Get("persist", &s)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || s != "value" {
		t.Fatalf("expected persisted value, found=%v s=%q", found, s)
	}
}

// TestFileCache_LRUEviction verifies that the oldest item is evicted at capacity
func TestFileCache_LRUEviction(t *testing.T) {
	c := NewMemoryCacheWithSize(2)

	if err := c.Set("a", 1, 0); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := c.Set("b", 2, 0); err != nil {
		t.Fatalf("set b: %v", err)
	}

	// Touch "a" so "b" becomes least recently used
	var n int
	if _, err := c.Get("a", &n); err != nil {
		t.Fatalf("get a: %v", err)
	}

	if err := c.Set("c", 3, 0); err != nil {
		t.Fatalf("set c: %v", err)
	}

	found, err := c.Get("b", &n)
	if err != nil {
		t.Fatalf("get b: %v", err)
	}
	if found {
		t.Fatalf("expected b to be evicted")
	}

	if found, _ := c.Get("a", &n); !found {
		t.Fatalf("expected a to survive eviction")
	}
}

// TestFileCache_Delete verifies item removal
func TestFileCache_Delete(t *testing.T) {
	c := NewMemoryCache()

	if err := c.Set("k", "v", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var s string
	if found, _ := c.Get("k", &s); found {
		t.Fatalf("expected item to be deleted")
	}
}

// TestFileCache_Clear verifies all items are removed
func TestFileCache_Clear(t *testing.T) {
	c := NewMemoryCache()

	_ = c.Set("a", 1, 0)
	_ = c.Set("b", 2, 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var n int
	if found, _ := c.Get("a", &n); found {
		t.Fatalf("expected cache to be empty")
	}
}

// TestBadgerCache_SetGet tests the badger-backed cache round trip
func TestBadgerCache_SetGet(t *testing.T) {
	c, err := NewBadgerCache(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create badger cache: %v", err)
	}
	defer c.Close()

	type entry struct{ Key, Value string }
	expected := []entry{{"loginTitle", "Sign in"}, {"username", "Username"}}

	if err := c.Set("bundles", expected, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []entry
	found, err := c.Get("bundles", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatalf("expected item to be found")
	}
	if len(got) != 2 || got[0] != expected[0] || got[1] != expected[1] {
		t.Fatalf("expected %v got %v", expected, got)
	}
}

// TestBadgerCache_TTL verifies badger cache expiry
func TestBadgerCache_TTL(t *testing.T) {
	c, err := NewBadgerCache(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create badger cache: %v", err)
	}
	defer c.Close()

	if err := c.Set("k", "v", time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	var s string
	found, err := c.Get("k", &s)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected item to be expired")
	}
}
