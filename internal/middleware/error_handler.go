package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/logger"
	"github.com/guttosm/order-service/internal/i18n"
)

// ErrorHandler logs errors attached with c.Error and, when the handler wrote
// nothing, answers 500 with the standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		log := logger.WithRequest(GetRequestID(c))
		log.Error().
			Str("error", c.Errors.Last().Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
	}
}
