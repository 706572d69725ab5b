package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bundletui/pkg/api/interfaces"
)

// Client is an admin API client with dependency injection for logging and
// caching. All bundle, theme and realm lookups go through it.
type Client struct {
	httpClient  *HTTPClient
	authManager *AuthManager

	// Dependencies
	logger interfaces.Logger
	cache  interfaces.Cache

	// API settings
	baseURL string
	realm   string
}

// NewClient creates a new admin API client with dependency injection.
func NewClient(config interfaces.Config, options ...ClientOption) (*Client, error) {
	// Apply options
	opts := defaultOptions()
	for _, option := range options {
		option(opts)
	}

	if config.GetAddr() == "" {
		return nil, fmt.Errorf("admin server address cannot be empty")
	}

	baseURL := strings.TrimRight(config.GetAddr(), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	opts.Logger.Debug("Admin server URL: %s", baseURL)

	// Configure TLS
	tlsConfig := &tls.Config{InsecureSkipVerify: config.GetInsecure()}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}

	// Create auth manager
	var authManager *AuthManager
	if config.IsUsingTokenAuth() {
		authManager = NewStaticTokenAuthManager(config.GetToken())
	} else {
		authRealm := config.GetAuthRealm()
		if authRealm == "" {
			authRealm = "master"
		}
		authManager = NewAuthManager(baseURL, authRealm, config.GetUser(), config.GetPassword(), httpClient)
	}

	client := &Client{
		httpClient:  NewHTTPClient(httpClient, authManager, baseURL),
		authManager: authManager,
		logger:      opts.Logger,
		cache:       opts.Cache,
		baseURL:     baseURL,
		realm:       config.GetRealm(),
	}

	// Test authentication
	if _, err := authManager.GetValidToken(context.Background()); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	opts.Logger.Debug("Admin API client initialized successfully")

	return client, nil
}

// Realm returns the realm whose bundles this client browses.
func (c *Client) Realm() string {
	return c.realm
}

// IsUsingTokenAuth returns true if the client is using bearer token authentication.
func (c *Client) IsUsingTokenAuth() bool {
	return c.authManager != nil && c.authManager.IsTokenAuth()
}

// Get makes a GET request to the admin API with retry logic.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	c.logger.Debug("API GET: %s", path)

	return c.httpClient.GetWithRetry(ctx, path, result, 3)
}

// GetNoRetry makes a GET request to the admin API without retry logic.
func (c *Client) GetNoRetry(ctx context.Context, path string, result interface{}) error {
	c.logger.Debug("API GET (no retry): %s", path)

	return c.httpClient.Get(ctx, path, result)
}

// GetWithCache makes a GET request to the admin API with caching.
func (c *Client) GetWithCache(ctx context.Context, path string, result interface{}, ttl time.Duration) error {
	cacheKey := c.cacheKey(path)

	// Try to get from cache first
	found, err := c.cache.Get(cacheKey, result)
	if err != nil {
		c.logger.Debug("Cache error for %s: %v", path, err)
	} else if found {
		c.logger.Debug("Cache hit for: %s", path)

		return nil
	}

	// Cache miss or error, make the API call
	c.logger.Debug("Cache miss for: %s", path)

	if err := c.Get(ctx, path, result); err != nil {
		return err
	}

	// Cache the result
	if result != nil {
		if err := c.cache.Set(cacheKey, result, ttl); err != nil {
			c.logger.Debug("Failed to cache API result for %s: %v", path, err)
		} else {
			c.logger.Debug("Cached API result for %s with TTL %v", path, ttl)
		}
	}

	return nil
}

// ClearAPICache removes all cached admin API responses.
func (c *Client) ClearAPICache() {
	if err := c.cache.Clear(); err != nil {
		c.logger.Debug("Failed to clear API cache: %v", err)
	} else {
		c.logger.Debug("API cache cleared successfully")
	}
}

// cacheKey derives the cache key for an API path.
func (c *Client) cacheKey(path string) string {
	key := fmt.Sprintf("bundletui_api_%s_%s", c.baseURL, path)

	return strings.ReplaceAll(key, "/", "_")
}
