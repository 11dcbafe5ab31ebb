//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(t *testing.T, cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.POST("/api/checkout", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       time.Hour,
	}

	t.Run("listed origin is allowed", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://museum.example"}

		w := preflight(t, cfg, "https://museum.example")
		assert.Equal(t, "https://museum.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://museum.example"}

		w := preflight(t, cfg, "https://elsewhere.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		cfg.AllowCredentials = true

		w := preflight(t, cfg, "https://partner.example")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
