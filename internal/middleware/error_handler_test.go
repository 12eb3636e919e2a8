//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no errors",
			handler:    okHandler,
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name: "error without response",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Ocurrió un error inesperado",
		},
		{
			name: "error with response already written",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
				c.JSON(http.StatusUnprocessableEntity, dto.NewError(http.StatusUnprocessableEntity, "Error de validación"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Error de validación",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
