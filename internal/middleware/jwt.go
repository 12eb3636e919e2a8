package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/i18n"
)

// TokenValidator verifies a bearer token and returns the caller it identifies.
type TokenValidator interface {
	Validate(tokenString string) (*dto.Claims, error)
}

// JWTAuth returns a middleware that requires a valid bearer token.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}
