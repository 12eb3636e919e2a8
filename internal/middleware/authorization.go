package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/i18n"
)

// Roles checked on the order routes.
const (
	RoleOrdersRead  = "orders:read"
	RoleOrdersWrite = "orders:write"
)

// RequireRole returns a middleware that admits callers holding any of roles.
// It must run after JWTAuth. Anonymous callers get 401, callers without a
// matching role get 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if caller == nil {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, role := range roles {
			if caller.HasRole(role) {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, i18n.ErrKeyForbidden)
	}
}
