package middleware

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/policy"

	"github.com/gin-gonic/gin"
)

// RequireStaff admits ADMIN and EDITOR callers. Runs after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := &entity.Session{
			ID:   c.GetString("user_id"),
			Role: entity.UserRole(c.GetString("role")),
		}
		if !policy.CanAccessRoute(session, policy.StaffGated) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only ADMIN callers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.UserRole(c.GetString("role"))
		if role != entity.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
