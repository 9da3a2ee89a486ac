package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"yocc-backend/internal/middleware"
)

func TestRateLimiter_PerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := middleware.NewRateLimiter(1, 2)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, c.GetHeader("X-User"))
		c.Next()
	}, rl.Middleware())
	router.POST("/generate", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusTooManyRequests, do("alice"))
	assert.Equal(t, http.StatusOK, do("bob"))
}
