package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPClient(server *httptest.Server) *HTTPClient {
	return NewHTTPClient(server.Client(), NewStaticTokenAuthManager("test-token"), server.URL)
}

func TestNewHTTPClient(t *testing.T) {
	httpClient := &http.Client{}
	am := NewStaticTokenAuthManager("tok")

	client := NewHTTPClient(httpClient, am, "https://auth.example.com/")

	assert.NotNil(t, client)
	assert.Equal(t, httpClient, client.client)
	assert.Equal(t, am, client.authManager)
	assert.Equal(t, "https://auth.example.com", client.baseURL)
}

func TestHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/serverinfo", r.URL.Path)
		assert.Equal(t, "bundletui", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"themes": map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.Get(context.Background(), "/admin/serverinfo", &result)

	require.NoError(t, err)
	assert.Contains(t, result, "themes")
}

func TestHTTPClient_Get_TypedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"key":"loginTitle","value":"Sign in"}]`))
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var entries []BundleEntry
	err := client.Get(context.Background(), "/bundles", &entries)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "loginTitle", entries[0].Key)
	assert.Equal(t, "Sign in", entries[0].Value)
}

func TestHTTPClient_Get_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Realm not found"}`))
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.Get(context.Background(), "/admin/realms/nope", &result)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "Realm not found")
}

func TestHTTPClient_Get_UnauthorizedWithStaticToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.Get(context.Background(), "/admin/serverinfo", &result)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer token authentication failed")
}

func TestHTTPClient_GetWithRetry_EventualSuccess(t *testing.T) {
	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.GetWithRetry(context.Background(), "/flaky", &result, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestHTTPClient_GetWithRetry_ExhaustsRetries(t *testing.T) {
	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.GetWithRetry(context.Background(), "/broken", &result, 3)

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "request failed after 3 attempts")
}

func TestHTTPClient_NoRetryOnClientError(t *testing.T) {
	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	var result map[string]interface{}
	err := client.GetWithRetry(context.Background(), "/bad-request", &result, 3)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "value", body["field"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	err := client.Post(context.Background(), "/submit", map[string]interface{}{"field": "value"}, nil)

	require.NoError(t, err)
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestHTTPClient(server)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var result map[string]interface{}
	err := client.GetWithRetry(ctx, "/anything", &result, 5)

	require.Error(t, err)
}
