package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitTestRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())
	rl := NewRateLimiter(rps, burst)
	r.POST("/write", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doWrite(router *gin.Engine, ip string) int {
	req, _ := http.NewRequest("POST", "/write", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BurstThenRejects(t *testing.T) {
	// Effectively no refill within the test window.
	router := rateLimitTestRouter(0.001, 2)

	assert.Equal(t, http.StatusOK, doWrite(router, "203.0.113.7"))
	assert.Equal(t, http.StatusOK, doWrite(router, "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, doWrite(router, "203.0.113.7"))
}

func TestRateLimiter_PerIdentifier(t *testing.T) {
	router := rateLimitTestRouter(0.001, 1)

	assert.Equal(t, http.StatusOK, doWrite(router, "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, doWrite(router, "203.0.113.7"))

	// A different visitor has their own budget.
	assert.Equal(t, http.StatusOK, doWrite(router, "198.51.100.4"))
}
