package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/i18n"
	"github.com/guttosm/order-service/internal/logger"
)

// Recovery returns a middleware that turns a panic into a 500 error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.WithRequest(GetRequestID(c))
				log.Error().
					Interface("panic", rec).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")

				abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
			}
		}()
		c.Next()
	}
}
