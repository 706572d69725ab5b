package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenEndpoint = "/realms/master/protocol/openid-connect/token"

func TestAuthToken_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		token    *AuthToken
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name: "empty access token",
			token: &AuthToken{
				AccessToken: "",
				ExpiresAt:   time.Now().Add(1 * time.Hour),
			},
			expected: false,
		},
		{
			name: "expired token",
			token: &AuthToken{
				AccessToken: "valid-token",
				ExpiresAt:   time.Now().Add(-1 * time.Hour),
			},
			expected: false,
		},
		{
			name: "token expiring within safety margin",
			token: &AuthToken{
				AccessToken: "valid-token",
				ExpiresAt:   time.Now().Add(10 * time.Second),
			},
			expected: false,
		},
		{
			name: "valid token",
			token: &AuthToken{
				AccessToken: "valid-token",
				ExpiresAt:   time.Now().Add(1 * time.Hour),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsValid())
		})
	}
}

func TestAuthManager_StaticToken(t *testing.T) {
	am := NewStaticTokenAuthManager("my-bearer-token")

	assert.True(t, am.IsTokenAuth())

	token, err := am.GetValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-bearer-token", token)
}

func TestAuthManager_PasswordGrant(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testTokenEndpoint, r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostFormValue("grant_type"))
		assert.Equal(t, "admin-cli", r.PostFormValue("client_id"))
		assert.Equal(t, "admin", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "issued-token",
			"expires_in":   300,
		})
	}))
	defer server.Close()

	am := NewAuthManager(server.URL, "master", "admin", "secret", server.Client())

	assert.False(t, am.IsTokenAuth())

	token, err := am.GetValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)

	// Second call reuses the cached token
	token, err = am.GetValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, 1, requests)
}

func TestAuthManager_PasswordGrant_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	am := NewAuthManager(server.URL, "master", "admin", "wrong", server.Client())

	_, err := am.GetValidToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestAuthManager_ClearToken(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "issued-token",
			"expires_in":   300,
		})
	}))
	defer server.Close()

	am := NewAuthManager(server.URL, "master", "admin", "secret", server.Client())

	_, err := am.GetValidToken(context.Background())
	require.NoError(t, err)

	am.ClearToken()

	_, err = am.GetValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestAuthManager_ShortLivedTokenRefreshed(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		// Expires inside the 30 second safety margin, so each call
		// must re-authenticate.
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "short-lived",
			"expires_in":   5,
		})
	}))
	defer server.Close()

	am := NewAuthManager(server.URL, "master", "admin", "secret", server.Client())

	_, err := am.GetValidToken(context.Background())
	require.NoError(t, err)

	_, err = am.GetValidToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
}
