package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/appquanta/appquanta-backend/internal/api/http"
)

// DefaultProtectedPrefixes lists path prefixes that require authentication.
var DefaultProtectedPrefixes = []string{"/api/v1/apps"}

// Middleware authenticates every inbound request before routing.
//
// A request carrying a bearer token is verified against the identity provider;
// an invalid token is rejected even on public paths. A request without a token
// is rejected only when the path matches a protected prefix. Verification is
// fail-closed: if the provider is unreachable the token counts as invalid.
func Middleware(verifier TokenVerifier, protectedPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token != "" {
			userID, err := verifier.Verify(c.Request.Context(), token)
			if err != nil || userID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					httpapi.Fail("Invalid authentication token."))
				return
			}
			c.Set(CtxUserID, userID)
			c.Next()
			return
		}

		if isProtected(c.Request.URL.Path, protectedPrefixes) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpapi.Fail("Authentication token required."))
			return
		}

		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header.
// The "Bearer " prefix is case-sensitive; anything else counts as no token.
func extractToken(c *gin.Context) string {
	authorization := c.GetHeader("Authorization")
	if !strings.HasPrefix(authorization, "Bearer ") {
		return ""
	}
	return strings.SplitN(authorization, " ", 2)[1]
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
