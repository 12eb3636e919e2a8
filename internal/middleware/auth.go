package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is empty, authentication is disabled. A valid key grants every order role.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
			return
		case !validKeys[key]:
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
			return
		}

		if GetCaller(c) == nil {
			setCaller(c, &dto.Claims{Subject: apiKeyCaller, Roles: []string{RoleOrdersRead, RoleOrdersWrite}})
		}
		c.Next()
	}
}
