package auth

import (
	"context"
	"net/http"

	"academiasport/internal/api"

	"github.com/gin-gonic/gin"
)

const adminIDKey = "admin_id"

// AdminChecker resolves whether a user id belongs to an administrator.
// It returns an error when the user does not exist.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAdmin guards routes that take the caller's id in the userId query
// parameter. A missing id is 401; unknown or non-admin users get 403.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Access denied"})
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID)
		if err != nil || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Message: "Only administrators can access this resource"})
			return
		}

		c.Set(adminIDKey, userID)
		c.Next()
	}
}

// GetAdminID returns the administrator id stored by RequireAdmin.
func GetAdminID(c *gin.Context) (string, bool) {
	v, exists := c.Get(adminIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
