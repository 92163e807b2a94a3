package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	return s.userID, s.err
}

func newTestRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(verifier, []string{"/api/v1/apps"}))
	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	}
	r.GET("/api/v1/apps", echo)
	r.GET("/public", echo)
	return r
}

func doRequest(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestMiddleware_ProtectedRoute(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u1"})

		w := doRequest(r, "/api/v1/apps", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authentication token required.", body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("invalid token is rejected with a distinct message", func(t *testing.T) {
		r := newTestRouter(stubVerifier{err: errors.New("provider says no")})

		w := doRequest(r, "/api/v1/apps", "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Invalid authentication token.", body["message"])
	})

	t.Run("valid token reaches the handler with identity attached", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u1"})

		w := doRequest(r, "/api/v1/apps", "Bearer good-token")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "u1", body["user_id"])
	})

	t.Run("provider failure never default-authenticates", func(t *testing.T) {
		r := newTestRouter(stubVerifier{err: errors.New("connection refused")})

		w := doRequest(r, "/api/v1/apps", "Bearer any")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty identity from verifier counts as invalid", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: ""})

		w := doRequest(r, "/api/v1/apps", "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMiddleware_TokenExtraction(t *testing.T) {
	t.Run("prefix is case-sensitive", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u1"})

		// "bearer" is not "Bearer": treated as no token on a protected path.
		w := doRequest(r, "/api/v1/apps", "bearer token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Authentication token required.", body["message"])
	})

	t.Run("header without Bearer prefix counts as no token", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u1"})

		w := doRequest(r, "/api/v1/apps", "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMiddleware_PublicRoute(t *testing.T) {
	t.Run("no token passes through unauthenticated", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u1"})

		w := doRequest(r, "/public", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "", body["user_id"])
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		r := newTestRouter(stubVerifier{err: errors.New("bad token")})

		w := doRequest(r, "/public", "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		r := newTestRouter(stubVerifier{userID: "u2"})

		w := doRequest(r, "/public", "Bearer good")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "u2", body["user_id"])
	})
}
