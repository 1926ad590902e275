package middleware

import (
	"ministry-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale picks the response language from the "lang" header, then from
// Accept-Language. Anything unsupported falls back to Spanish.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(raw))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
