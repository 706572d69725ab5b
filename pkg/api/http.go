package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"bundletui/internal/config"
)

// HTTPClient wraps http.Client with admin API specific functionality.
type HTTPClient struct {
	client      *http.Client
	authManager *AuthManager
	baseURL     string
}

// NewHTTPClient creates a new admin API HTTP client.
func NewHTTPClient(httpClient *http.Client, authManager *AuthManager, baseURL string) *HTTPClient {
	return &HTTPClient{
		client:      httpClient,
		authManager: authManager,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Get performs a GET request against the admin API.
func (hc *HTTPClient) Get(ctx context.Context, path string, result interface{}) error {
	return hc.doRequest(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request against the admin API.
func (hc *HTTPClient) Post(ctx context.Context, path string, data interface{}, result interface{}) error {
	return hc.doRequest(ctx, http.MethodPost, path, data, result)
}

// GetWithRetry performs a GET request with retry logic.
func (hc *HTTPClient) GetWithRetry(ctx context.Context, path string, result interface{}, maxRetries int) error {
	return hc.doRequestWithRetry(ctx, http.MethodGet, path, nil, result, maxRetries)
}

// doRequest performs an HTTP request without retries.
func (hc *HTTPClient) doRequest(ctx context.Context, method, path string, data interface{}, result interface{}) error {
	return hc.doRequestWithRetry(ctx, method, path, data, result, 1)
}

// doRequestWithRetry performs an HTTP request with retry logic.
func (hc *HTTPClient) doRequestWithRetry(ctx context.Context, method, path string, data interface{}, result interface{}, maxRetries int) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			// Exponential backoff
			backoff := time.Duration(attempt-1) * 500 * time.Millisecond
			config.DebugLog("Retrying request after %v (attempt %d/%d)", backoff, attempt, maxRetries)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := hc.executeRequest(ctx, method, path, data, result)
		if err == nil {
			return nil
		}

		lastErr = err

		if !hc.shouldRetry(err, attempt, maxRetries) {
			break
		}

		config.DebugLog("Request failed, will retry: %v", err)
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// executeRequest performs a single HTTP request.
func (hc *HTTPClient) executeRequest(ctx context.Context, method, path string, data interface{}, result interface{}) error {
	fullURL := hc.baseURL + path
	if !strings.HasPrefix(path, "/") {
		fullURL = hc.baseURL + "/" + path
	}

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Correlation id ties log lines of one request together.
	requestID := uuid.NewString()

	req.Header.Set("User-Agent", "bundletui")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	token, err := hc.authManager.GetValidToken(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	config.DebugLog("API %s: %s [%s]", method, path, requestID)

	resp, err := hc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if hc.authManager.IsTokenAuth() {
			return fmt.Errorf("bearer token authentication failed: %s", resp.Status)
		}

		config.DebugLog("Access token expired, clearing cache [%s]", requestID)
		hc.authManager.ClearToken()

		return fmt.Errorf("authentication failed: %s", resp.Status)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response JSON: %w", err)
		}
	}

	return nil
}

// shouldRetry determines if a request should be retried.
func (hc *HTTPClient) shouldRetry(err error, attempt, maxRetries int) bool {
	if attempt >= maxRetries {
		return false
	}

	// Retry on authentication errors (token might have expired)
	if strings.Contains(err.Error(), "authentication failed") && !hc.authManager.IsTokenAuth() {
		return true
	}

	// Retry on network errors
	if strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "network") {
		return true
	}

	// Retry on 5xx server errors
	if strings.Contains(err.Error(), "status 5") {
		return true
	}

	return false
}
