package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dochouse/doc-house-server/internal/models"
	"github.com/dochouse/doc-house-server/internal/utils"
)

// ContextEmailKey is where RequireAuth stores the authenticated email.
const ContextEmailKey = "email"

// RequireAuth rejects requests without a valid bearer token. Both the missing
// header and a bad token answer 403, matching what the frontend expects.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// RoleLookup resolves the stored role for an email. A user that does not
// exist resolves to models.RoleUnset.
type RoleLookup func(ctx context.Context, email string) (models.Role, error)

// RequireAdmin runs after RequireAuth and checks the requester's stored role.
func RequireAdmin(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		role, err := lookup(c.Request.Context(), email)
		if err != nil || !role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}
