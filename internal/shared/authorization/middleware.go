package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/utils"
)

// RequireDeveloper rejects requests whose authenticated role is not developer.
// It must run after the auth middleware has populated the context.
func RequireDeveloper() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleDeveloper) {
			utils.ErrorResponse(c, http.StatusForbidden, "developer access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
