package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterInMemory(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(nil, nil)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(rl.Middleware(ContactRateLimitConfig(2, time.Minute)))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := perform(r, http.MethodPost, "/contact", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := perform(r, http.MethodPost, "/contact", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// New window
	now = now.Add(61 * time.Second)
	w = perform(r, http.MethodPost, "/contact", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(nil, nil)
	r := gin.New()
	r.Use(rl.Middleware(RateLimitConfig{
		Limit:     1,
		Window:    time.Minute,
		KeyPrefix: "rl:test:",
		KeyFunc:   func(c *gin.Context) string { return c.GetHeader("X-Key") },
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", map[string]string{"X-Key": "a"}).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", map[string]string{"X-Key": "b"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/", map[string]string{"X-Key": "a"}).Code)
}

func TestRateLimiterSweepsExpiredEntries(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(nil, nil)
	rl.now = func() time.Time { return now }
	cfg := GlobalRateLimitConfig(10, time.Second)

	rl.hitInMemory("a", cfg)
	rl.hitInMemory("b", cfg)
	now = now.Add(2 * time.Minute)
	rl.hitInMemory("c", cfg)

	assert.Len(t, rl.entries, 1)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(domain.KeyRequestID).(string)
		c.String(http.StatusOK, ctxID+"|"+response.RequestID(c))
	})

	w := perform(r, http.MethodGet, "/", nil)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id+"|"+id, w.Body.String())

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "trace-abc-123"})
	assert.Equal(t, "trace-abc-123", w.Header().Get(RequestIDHeader))

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "bad id\r\nx"})
	assert.NotEqual(t, "bad id\r\nx", w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	newRouter := func(production bool) *gin.Engine {
		r := gin.New()
		r.Use(CORSMiddleware(CORSConfig{AllowedOrigins: []string{"https://portfolio.example/"}, Production: production}))
		r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("allowed origin preflight", func(t *testing.T) {
		w := perform(newRouter(true), http.MethodOptions, "/contact", map[string]string{"Origin": "https://portfolio.example"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin preflight", func(t *testing.T) {
		w := perform(newRouter(true), http.MethodOptions, "/contact", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("localhost only in development", func(t *testing.T) {
		h := map[string]string{"Origin": "http://localhost:3000"}
		assert.Equal(t, http.StatusNoContent, perform(newRouter(false), http.MethodOptions, "/contact", h).Code)
		assert.Equal(t, http.StatusForbidden, perform(newRouter(true), http.MethodOptions, "/contact", h).Code)
	})

	t.Run("same origin request", func(t *testing.T) {
		w := perform(newRouter(true), http.MethodPost, "/contact", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"
	r := gin.New()
	r.Use(AdminAuthMiddleware(secret, nil))
	r.GET("/admin", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyAdminSubject)))
	})

	token, err := auth.IssueAdminToken(secret, "owner", time.Hour)
	require.NoError(t, err)

	w := perform(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/admin", map[string]string{"Authorization": token}).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer nope"}).Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.BadRequest("Invalid request").WithDetails([]string{"Name is too long"}))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	w := perform(r, http.MethodGet, "/app", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid request","error":["Name is too long"]}`, w.Body.String())

	w = perform(r, http.MethodGet, "/raw", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(true))
	r.GET("/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
