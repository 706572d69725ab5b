package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"bundletui/internal/config"
)

// AuthToken represents a bearer token obtained from the token endpoint.
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsValid checks if the token is still valid (not expired).
// A 30 second safety margin avoids using a token that expires mid-request.
func (t *AuthToken) IsValid() bool {
	return t != nil && t.AccessToken != "" && time.Now().Add(30*time.Second).Before(t.ExpiresAt)
}

// AuthManager handles admin API authentication.
//
// Two modes are supported: a static bearer token configured up front, or
// the OAuth2 password grant against the server's token endpoint with
// expiry tracking and re-login.
type AuthManager struct {
	baseURL     string
	authRealm   string
	username    string
	password    string
	staticToken string
	httpClient  *http.Client
	token       *AuthToken
	mu          sync.RWMutex
}

// NewAuthManager creates an authentication manager for the password grant.
func NewAuthManager(baseURL, authRealm, username, password string, httpClient *http.Client) *AuthManager {
	return &AuthManager{
		baseURL:    baseURL,
		authRealm:  authRealm,
		username:   username,
		password:   password,
		httpClient: httpClient,
	}
}

// NewStaticTokenAuthManager creates an authentication manager that always
// returns the given pre-issued bearer token.
func NewStaticTokenAuthManager(token string) *AuthManager {
	return &AuthManager{staticToken: token}
}

// IsTokenAuth reports whether a static bearer token is in use.
func (am *AuthManager) IsTokenAuth() bool {
	return am.staticToken != ""
}

// GetValidToken returns a valid bearer token, logging in again if necessary.
func (am *AuthManager) GetValidToken(ctx context.Context) (string, error) {
	if am.staticToken != "" {
		return am.staticToken, nil
	}

	am.mu.RLock()
	if am.token.IsValid() {
		token := am.token.AccessToken
		am.mu.RUnlock()

		return token, nil
	}
	am.mu.RUnlock()

	return am.authenticate(ctx)
}

// authenticate performs the password grant against the token endpoint.
func (am *AuthManager) authenticate(ctx context.Context) (string, error) {
	am.mu.Lock()
	defer am.mu.Unlock()

	// Double-check after acquiring write lock
	if am.token.IsValid() {
		return am.token.AccessToken, nil
	}

	config.DebugLog("Authenticating with admin API: %s", am.username)

	tokenURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token",
		strings.TrimRight(am.baseURL, "/"), url.PathEscape(am.authRealm))

	formData := url.Values{}
	formData.Set("grant_type", "password")
	formData.Set("client_id", "admin-cli")
	formData.Set("username", am.username)
	formData.Set("password", am.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create authentication request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "bundletui")

	resp, err := am.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("authentication request failed: %w", err)
	}
	defer resp.Body.Close()

	config.DebugLog("Authentication response status: %d %s", resp.StatusCode, resp.Status)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		config.DebugLog("Authentication failed response body: %s", string(body))

		return "", fmt.Errorf("authentication failed with status %d: %s", resp.StatusCode, resp.Status)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", fmt.Errorf("failed to parse authentication response: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("authentication failed: no access token received")
	}

	am.token = &AuthToken{
		AccessToken: tokenResponse.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second),
	}

	config.DebugLog("Authentication successful for user: %s", am.username)

	return am.token.AccessToken, nil
}

// ClearToken clears the cached bearer token, forcing a re-login on the
// next request.
func (am *AuthManager) ClearToken() {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.token = nil
	config.DebugLog("Authentication token cleared")
}
