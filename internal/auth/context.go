package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxUserID = "user_id"

// UserID extracts the authenticated user's ID from the Gin context.
// This is set by Middleware; empty means the request is unauthenticated.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}
