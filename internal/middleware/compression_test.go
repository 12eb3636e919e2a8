//go:build !integration

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	body := strings.Repeat(`{"id":1,"total":"24.75"}`, 100)

	router := gin.New()
	router.Use(Compression())
	router.GET("/api/pedidos", func(c *gin.Context) {
		c.String(http.StatusOK, body)
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, body)
	})

	t.Run("gzips when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pedidos", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, body, string(plain))
	})

	t.Run("plain without Accept-Encoding", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos", nil))

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, body, w.Body.String())
	})

	t.Run("metrics are not compressed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Content-Encoding"))
	})
}
