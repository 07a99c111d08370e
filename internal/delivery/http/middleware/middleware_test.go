package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitMiddleware_InMemory(t *testing.T) {
	cfg := ContactRateLimitConfig(2, time.Minute)
	cfg.KeyPrefix = "rl:test:" + t.Name() + ":"

	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/send-email", RateLimitMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/send-email", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	w := do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Rate limit exceeded. Please try again later."}`, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		production bool
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{name: "allowed origin", allowed: []string{"https://me.dev"}, origin: "https://me.dev", wantStatus: http.StatusNoContent, wantOrigin: "https://me.dev"},
		{name: "unknown origin", allowed: []string{"https://me.dev"}, origin: "https://evil.example", wantStatus: http.StatusForbidden},
		{name: "dev origin outside production", allowed: []string{"https://me.dev"}, origin: "http://localhost:5173", wantStatus: http.StatusNoContent, wantOrigin: "http://localhost:5173"},
		{name: "dev origin in production", allowed: []string{"https://me.dev"}, production: true, origin: "http://localhost:5173", wantStatus: http.StatusForbidden},
		{name: "wildcard", allowed: []string{"*"}, production: true, origin: "https://anyone.example", wantStatus: http.StatusNoContent, wantOrigin: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.allowed, tt.production))
			r.POST("/send-email", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		require.NoError(t, err)
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("reuses caller id", func(t *testing.T) {
		id := uuid.NewString()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		r.ServeHTTP(w, req)
		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces garbage", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("Validation failed", map[string]string{"email": "Email is required"}, nil))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Validation failed","errors":{"email":"Email is required"}}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An unexpected error occurred. Please try again later."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.POST("/", BodyLimit(8), func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			if IsBodyTooLarge(err) {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "within limit", body: `{"a":""}`, want: http.StatusOK},
		{name: "over limit", body: `{"message":"way too long"}`, want: http.StatusRequestEntityTooLarge},
		{name: "malformed within limit", body: `{bad`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(true))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestCORSMiddleware_BareOptionsIsNotPreflight(t *testing.T) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(CORSMiddleware([]string{"*"}, false))
	r.POST("/send-email", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name   string
		origin string
		method string
	}{
		{name: "no headers"},
		{name: "origin only", origin: "https://me.dev"},
		{name: "request method only", method: http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method != "" {
				req.Header.Set("Access-Control-Request-Method", tt.method)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestRequestIDExtractor(t *testing.T) {
	extract := RequestIDExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	var got string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		attr, ok := extract(c.Request.Context())
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		got = attr.Value.String()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, w.Header().Get(RequestIDHeader), got)
}
