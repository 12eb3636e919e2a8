package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/i18n"
)

const (
	// CallerKey is the gin context key holding the *dto.Claims of an authenticated caller.
	CallerKey = "caller"
	// apiKeyCaller is the subject recorded for callers authenticated by API key.
	apiKeyCaller = "api-key"
)

// GetCaller returns the authenticated caller, or nil for anonymous requests.
func GetCaller(c *gin.Context) *dto.Claims {
	if v, exists := c.Get(CallerKey); exists {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

func setCaller(c *gin.Context, claims *dto.Claims) {
	c.Set(CallerKey, claims)
}

// stampCaller copies the caller identity onto a log entry.
func stampCaller(c *gin.Context, entry *model.LogEntry) {
	if caller := GetCaller(c); caller != nil {
		entry.UserID = caller.Subject
		entry.UserEmail = caller.Email
	}
}

// abortWithError aborts with the standard error envelope, message localized from key.
func abortWithError(c *gin.Context, status int, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(status, message).WithRequestID(GetRequestID(c)))
}
