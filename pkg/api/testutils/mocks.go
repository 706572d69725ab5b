// Package testutils provides mock and in-memory implementations of the
// pkg/api/interfaces contracts for use in tests.
package testutils

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of the Logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.Called(format, args)
}

// MockCache is a mock implementation of the Cache interface
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, dest interface{}) (bool, error) {
	args := m.Called(key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value interface{}, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCache) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// TestConfig is a simple test implementation of the Config interface
type TestConfig struct {
	Addr      string
	Realm     string
	AuthRealm string
	User      string
	Password  string
	Token     string
	Insecure  bool
}

func (c *TestConfig) GetAddr() string      { return c.Addr }
func (c *TestConfig) GetRealm() string     { return c.Realm }
func (c *TestConfig) GetAuthRealm() string { return c.AuthRealm }
func (c *TestConfig) GetUser() string      { return c.User }
func (c *TestConfig) GetPassword() string  { return c.Password }
func (c *TestConfig) GetToken() string     { return c.Token }
func (c *TestConfig) GetInsecure() bool    { return c.Insecure }

func (c *TestConfig) IsUsingTokenAuth() bool {
	return c.Token != ""
}

// NewTestConfig creates a test configuration with sensible defaults
func NewTestConfig() *TestConfig {
	return &TestConfig{
		Addr:      "https://auth.test.example.com",
		Realm:     "master",
		AuthRealm: "master",
		User:      "admin",
		Password:  "testpass",
		Insecure:  true,
	}
}

// NewTestConfigWithToken creates a test configuration using token authentication
func NewTestConfigWithToken() *TestConfig {
	return &TestConfig{
		Addr:      "https://auth.test.example.com",
		Realm:     "master",
		AuthRealm: "master",
		Token:     "test-bearer-token",
		Insecure:  true,
	}
}

// TestLogger is a simple test logger that captures log messages
type TestLogger struct {
	DebugMessages []string
	InfoMessages  []string
	ErrorMessages []string
}

func (l *TestLogger) Debug(format string, args ...interface{}) {
	l.DebugMessages = append(l.DebugMessages, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Info(format string, args ...interface{}) {
	l.InfoMessages = append(l.InfoMessages, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Error(format string, args ...interface{}) {
	l.ErrorMessages = append(l.ErrorMessages, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Reset() {
	l.DebugMessages = nil
	l.InfoMessages = nil
	l.ErrorMessages = nil
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{
		DebugMessages: make([]string, 0),
		InfoMessages:  make([]string, 0),
		ErrorMessages: make([]string, 0),
	}
}

// InMemoryCache is a simple in-memory cache for testing. Values are stored
// as JSON so Get round-trips through the same marshaling the real caches use.
type InMemoryCache struct {
	data map[string][]byte
}

func (c *InMemoryCache) Get(key string, dest interface{}) (bool, error) {
	raw, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *InMemoryCache) Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.data[key] = raw
	return nil
}

func (c *InMemoryCache) Delete(key string) error {
	delete(c.data, key)
	return nil
}

func (c *InMemoryCache) Clear() error {
	c.data = make(map[string][]byte)
	return nil
}

// Len returns the number of cached entries.
func (c *InMemoryCache) Len() int {
	return len(c.data)
}

// NewInMemoryCache creates a new in-memory cache for testing
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		data: make(map[string][]byte),
	}
}

// AssertLogContains checks if a log message contains the expected text
func AssertLogContains(t *testing.T, logger *TestLogger, level string, expectedText string) {
	var messages []string
	switch level {
	case "debug":
		messages = logger.DebugMessages
	case "info":
		messages = logger.InfoMessages
	case "error":
		messages = logger.ErrorMessages
	default:
		t.Fatalf("Unknown log level: %s", level)
	}

	for _, msg := range messages {
		if strings.Contains(msg, expectedText) {
			return
		}
	}

	t.Errorf("Expected %s log to contain '%s', but it was not found. Messages: %v", level, expectedText, messages)
}
