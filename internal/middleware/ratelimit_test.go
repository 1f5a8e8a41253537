package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newLimitedAuthRouter mounts stub auth endpoints behind a shared limiter,
// the way the server wires /auth.
func newLimitedAuthRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	auth := router.Group("/auth", rl.Middleware())
	auth.POST("/login", func(c *gin.Context) {
		c.JSON(200, gin.H{"token": "stub"})
	})
	auth.POST("/verify-code", func(c *gin.Context) {
		c.JSON(200, gin.H{"valid": true})
	})
	return router
}

func TestRateLimit_AllowsNormalTraffic(t *testing.T) {
	router := newLimitedAuthRouter(NewRateLimiter(10, 10))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRateLimit_BlocksExcessiveTraffic(t *testing.T) {
	router := newLimitedAuthRouter(NewRateLimiter(1, 2))

	// the limiter is shared across the group, so login and verify-code
	// draw from the same per-IP budget
	paths := []string{"/auth/login", "/auth/verify-code", "/auth/login", "/auth/verify-code", "/auth/login"}
	var last *httptest.ResponseRecorder
	for _, path := range paths {
		last = httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, nil)
		req.RemoteAddr = "10.0.0.1:12345"
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d after burst exceeded, got %d", http.StatusTooManyRequests, last.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(last.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("throttled response should carry an error key, got %s", last.Body.String())
	}
}

func TestRateLimit_IndependentPerIP(t *testing.T) {
	router := newLimitedAuthRouter(NewRateLimiter(1, 1))

	// first client spends its whole burst
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/auth/login", nil)
	req1.RemoteAddr = "10.0.0.1:12345"
	router.ServeHTTP(w1, req1)

	if w1.Code != http.StatusOK {
		t.Errorf("first client: expected %d, got %d", http.StatusOK, w1.Code)
	}

	// a different client still has its own budget
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/auth/login", nil)
	req2.RemoteAddr = "10.0.0.2:12345"
	router.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Errorf("second client: expected %d, got %d", http.StatusOK, w2.Code)
	}
}
