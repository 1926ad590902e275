package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	pkgErrors "ministry-srv/pkg/errors"
	"ministry-srv/pkg/locale"
	"ministry-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/csrf"
)

// CSRFFieldName is the form field carrying the token.
const CSRFFieldName = "gorilla.csrf.Token"

var csrfFailedMessage = locale.Messages{
	locale.ES: "El formulario expiró. Recarga la página e intenta de nuevo.",
	locale.EN: "The form expired. Reload the page and try again.",
}

type ginContextKey struct{}

// CSRF protects form submissions. Safe requests get a token in their context
// for the page templates. JSON and body-less posts are left alone: browsers
// cannot send them cross-site without a CORS preflight or a form.
// trustedOrigins takes the same full origins as CORS; wildcard entries are ignored.
func (m Middleware) CSRF(key []byte, trustedOrigins []string) gin.HandlerFunc {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := r.Context().Value(ginContextKey{}).(*gin.Context)
		c.Request = r
		c.Next()
	})
	failed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := r.Context().Value(ginContextKey{}).(*gin.Context)
		m.l.Warnf(r.Context(), "internal.middleware.CSRF: %s %s rejected: %v", r.Method, r.URL.Path, csrf.FailureReason(r))
		response.HttpError(c, pkgErrors.NewForbiddenHTTPError(csrfFailedMessage.Pick(r.Context())))
		c.Abort()
	})

	protect := csrf.Protect(key,
		csrf.Secure(m.cookieCfg.Secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.TrustedOrigins(trustedHosts(trustedOrigins)),
		csrf.ErrorHandler(failed),
	)(next)

	return func(c *gin.Context) {
		if !isSafeMethod(c.Request.Method) && !isFormContent(c.ContentType()) {
			c.Next()
			return
		}

		r := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		if !m.cookieCfg.Secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protect.ServeHTTP(c.Writer, r)
	}
}

// trustedHosts reduces origins to the host[:port] form the CSRF check compares.
func trustedHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" || strings.Contains(o, "*") {
			continue
		}
		u, err := url.Parse(o)
		if err != nil || u.Host == "" {
			continue
		}
		hosts = append(hosts, u.Host)
	}
	return hosts
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

func isFormContent(contentType string) bool {
	return contentType == binding.MIMEPOSTForm || contentType == binding.MIMEMultipartPOSTForm
}
