// Package interfaces defines the core interfaces used throughout bundletui.
//
// This package provides clean abstractions for logging and caching that
// enable dependency injection and testability. All interfaces follow Go
// best practices with minimal, focused responsibilities.
//
// The interfaces are designed to be easily mockable for testing and allow
// for different implementations (e.g., badger-backed vs in-memory caching,
// console vs file logging).
package interfaces

import "time"

// Logger defines the interface for leveled logging functionality.
//
// Implementations should support different log levels and be safe for
// concurrent use. The format parameter follows fmt.Printf conventions.
//
// Example usage:
//
//	logger.Debug("Fetching bundles for theme: %s", theme)
//	logger.Info("Connected to %s", addr)
//	logger.Error("Admin API request failed: %v", err)
type Logger interface {
	// Debug logs debug-level messages. These are typically only shown
	// when debug logging is explicitly enabled.
	Debug(format string, args ...interface{})

	// Info logs informational messages about normal application flow.
	Info(format string, args ...interface{})

	// Error logs error messages for exceptional conditions that should
	// be investigated.
	Error(format string, args ...interface{})
}

// Cache defines the interface for key-value caching functionality.
//
// Implementations should be safe for concurrent use and handle TTL
// (time-to-live) expiration automatically. The dest parameter in Get
// should be a pointer to the type you want to unmarshal into.
//
// Example usage:
//
//	// Store data with 1 hour TTL
//	cache.Set("serverinfo_themes", themes, time.Hour)
//
//	// Retrieve data
//	var themes map[string][]ThemeInfo
//	found, err := cache.Get("serverinfo_themes", &themes)
//	if found && err == nil {
//		// Use cached themes
//	}
type Cache interface {
	// Get retrieves a value from the cache and unmarshals it into dest.
	// Returns true if the key was found and not expired, false otherwise.
	// dest must be a pointer to the type you want to unmarshal into.
	Get(key string, dest interface{}) (bool, error)

	// Set stores a value in the cache with the specified TTL.
	// If ttl is 0, the item will not expire automatically.
	Set(key string, value interface{}, ttl time.Duration) error

	// Delete removes a specific key from the cache.
	Delete(key string) error

	// Clear removes all items from the cache.
	Clear() error
}

// Config defines the interface for API client configuration, covering the
// admin server connection settings and authentication credentials.
type Config interface {
	// GetAddr returns the admin server URL (e.g., "https://auth.example.com").
	GetAddr() string

	// GetRealm returns the realm whose bundles are browsed.
	GetRealm() string

	// GetAuthRealm returns the realm used for authentication. This is
	// usually "master" and may differ from the browsed realm.
	GetAuthRealm() string

	// GetUser returns the admin username for password authentication.
	GetUser() string

	// GetPassword returns the password for password authentication.
	// Returns empty string if using token authentication.
	GetPassword() string

	// GetToken returns the pre-issued bearer token for token authentication.
	// Returns empty string if using password authentication.
	GetToken() string

	// GetInsecure returns true if TLS certificate verification should be skipped.
	GetInsecure() bool

	// IsUsingTokenAuth returns true if configured for bearer token
	// authentication, false if using password authentication.
	IsUsingTokenAuth() bool
}

// NoOpLogger is a Logger implementation that discards all messages.
// It is used as the default when no logger is injected.
type NoOpLogger struct{}

// Debug discards the message.
func (l *NoOpLogger) Debug(format string, args ...interface{}) {}

// Info discards the message.
func (l *NoOpLogger) Info(format string, args ...interface{}) {}

// Error discards the message.
func (l *NoOpLogger) Error(format string, args ...interface{}) {}

// NoOpCache is a Cache implementation that stores nothing.
// Every Get is a miss, which effectively disables caching.
type NoOpCache struct{}

// Get always reports a cache miss.
func (c *NoOpCache) Get(key string, dest interface{}) (bool, error) { return false, nil }

// Set discards the value.
func (c *NoOpCache) Set(key string, value interface{}, ttl time.Duration) error { return nil }

// Delete does nothing.
func (c *NoOpCache) Delete(key string) error { return nil }

// Clear does nothing.
func (c *NoOpCache) Clear() error { return nil }
