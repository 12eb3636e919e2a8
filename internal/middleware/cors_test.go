//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/api/pedidos", okHandler)
	return router
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		requestOrigin string
		wantOrigin    string
		wantStatus    int
	}{
		{
			name:          "allowed origin",
			origins:       []string{"https://shop.example.com"},
			requestOrigin: "https://shop.example.com",
			wantOrigin:    "https://shop.example.com",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "disallowed origin",
			origins:       []string{"https://shop.example.com"},
			requestOrigin: "https://evil.example.com",
			wantOrigin:    "",
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "default origins",
			origins:       nil,
			requestOrigin: "http://localhost:3000",
			wantOrigin:    "http://localhost:3000",
			wantStatus:    http.StatusOK,
		},
		{
			name:          "wildcard",
			origins:       []string{"*"},
			requestOrigin: "https://anything.example.com",
			wantOrigin:    "*",
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pedidos", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			w := httptest.NewRecorder()
			corsRouter(tt.origins).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/pedidos", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Idempotency-Key")
	w := httptest.NewRecorder()

	corsRouter([]string{"https://shop.example.com"}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
