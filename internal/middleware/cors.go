package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists exact origins or "*.example.com" wildcards.
	// Credentials are only allowed for listed origins, never for "*".
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// DefaultCORSConfig allows the given origins to call the JSON endpoints with
// the session cookie.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token", "X-Requested-With", "lang"},
		MaxAge:         86400,
	}
}

// CORS answers preflights and sets the allow headers for permitted origins.
func CORS(config CORSConfig) gin.HandlerFunc {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed, exact := matchOrigin(origin, config.AllowedOrigins)

		if allowed {
			c.Header("Vary", "Origin")
			if exact {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
			} else {
				c.Header("Access-Control-Allow-Origin", "*")
			}
		}

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			if allowed {
				c.Header("Access-Control-Allow-Methods", methods)
				c.Header("Access-Control-Allow-Headers", headers)
				if config.MaxAge > 0 {
					c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// matchOrigin reports whether origin is allowed, and whether it matched a
// specific entry rather than "*".
func matchOrigin(origin string, allowedOrigins []string) (allowed, exact bool) {
	if origin == "" {
		return false, false
	}
	for _, a := range allowedOrigins {
		switch {
		case a == origin:
			return true, true
		case strings.HasPrefix(a, "*."):
			if strings.HasSuffix(origin, a[1:]) {
				return true, true
			}
		}
	}
	for _, a := range allowedOrigins {
		if a == "*" {
			return true, false
		}
	}
	return false, false
}
