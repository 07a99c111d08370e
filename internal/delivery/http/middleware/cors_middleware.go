package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// devOrigins are the local frontend dev servers (Vite and CRA defaults)
var devOrigins = map[string]bool{
	"http://localhost:5173": true,
	"http://127.0.0.1:5173": true,
	"http://localhost:3000": true,
	"http://127.0.0.1:3000": true,
}

// CORSMiddleware adds CORS headers for the portfolio frontend.
//
// allowed is the explicit origin allow list; a single "*" allows any origin
// (without credentials). Dev origins are accepted outside production only.
func CORSMiddleware(allowed []string, isProduction bool) gin.HandlerFunc {
	allowAny := false
	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			allowAny = true
		}
		origins[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || allowAny || origins[origin] || (!isProduction && devOrigins[origin])

		if isAllowed && origin != "" {
			if allowAny {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Only real preflights stop here; a bare OPTIONS falls through to the 405 handler.
		if isPreflight(c.Request) {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}
