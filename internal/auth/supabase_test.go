package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appquanta/appquanta-backend/config"
)

func newVerifierFor(serverURL string) *SupabaseVerifier {
	return NewSupabaseVerifier(&config.AuthConfig{
		SupabaseURL:     serverURL,
		SupabaseAnonKey: "anon-key",
	})
}

func TestSupabaseVerifier_Verify(t *testing.T) {
	t.Run("resolves user id from provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/v1/user", r.URL.Path)
			require.Equal(t, "anon-key", r.Header.Get("apikey"))
			require.Equal(t, "Bearer the-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user-123","email":"u@example.com","role":"authenticated"}`))
		}))
		defer server.Close()

		userID, err := newVerifierFor(server.URL).Verify(context.Background(), "the-token")
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("rejected token yields error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid JWT"}`))
		}))
		defer server.Close()

		userID, err := newVerifierFor(server.URL).Verify(context.Background(), "bad-token")
		assert.Error(t, err)
		assert.Empty(t, userID)
	})

	t.Run("response without id yields error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"email":"u@example.com"}`))
		}))
		defer server.Close()

		_, err := newVerifierFor(server.URL).Verify(context.Background(), "token")
		assert.Error(t, err)
	})

	t.Run("unreachable provider yields error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		userID, err := newVerifierFor(server.URL).Verify(context.Background(), "token")
		assert.Error(t, err)
		assert.Empty(t, userID)
	})
}
