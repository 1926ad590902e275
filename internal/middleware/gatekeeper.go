package middleware

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"ministry-srv/internal/model"
	"ministry-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// LoginErrorFlag is the error value the login page receives when a
// credential is missing or no longer valid.
const LoginErrorFlag = "credenciales"

// PublicPaths is the allow-list of paths reachable without a credential.
type PublicPaths struct {
	Exact    []string
	Prefixes []string
}

func DefaultPublicPaths() PublicPaths {
	return PublicPaths{
		Exact:    []string{"/", model.LoginPath, model.LogoutPath, "/favicon.ico", "/health", "/ready", "/live"},
		Prefixes: []string{"/static/", "/api/", "/swagger/"},
	}
}

// Extend returns a copy of p with extra exact paths and prefixes added.
func (p PublicPaths) Extend(exact, prefixes []string) PublicPaths {
	return PublicPaths{
		Exact:    append(slices.Clone(p.Exact), exact...),
		Prefixes: append(slices.Clone(p.Prefixes), prefixes...),
	}
}

// Match reports whether path is public.
func (p PublicPaths) Match(path string) bool {
	for _, e := range p.Exact {
		if path == e {
			return true
		}
	}
	for _, prefix := range p.Prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gatekeeper verifies the session cookie on every request. A valid credential
// is attached to the request context. Protected paths without a usable
// credential are redirected to the login page; it never fails a request.
func (m Middleware) Gatekeeper() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		path := c.Request.URL.Path
		public := m.public.Match(path)

		token, ok := scope.GetSessionCookie(c, m.cookieCfg)
		if !ok {
			if public {
				c.Next()
				return
			}
			m.redirectToLogin(c, loginURL(c.Request.URL))
			return
		}

		cred, err := m.scope.Verify(token)
		if err != nil {
			m.security.CredentialRejected(ctx, path, err.Error())
			if public {
				c.Next()
				return
			}
			scope.ClearSessionCookies(c)
			m.redirectToLogin(c, loginURL(nil))
			return
		}

		ctx = m.l.With(scope.SetCredentialToContext(ctx, cred), "account_id", cred.AccountID, "role", string(cred.Role.Kind()))
		c.Request = c.Request.WithContext(ctx)

		if public {
			if path == model.LoginPath && isPageRequest(c.Request) {
				if home := cred.Home(); home != model.LoginPath {
					c.Redirect(http.StatusFound, home)
					c.Abort()
					return
				}
			}
			c.Next()
			return
		}

		if !model.IsConcrete(cred.Role) && path != model.RoleSelectionPath {
			c.Redirect(http.StatusFound, model.RoleSelectionPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) redirectToLogin(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// loginURL builds /login?error=credenciales, with next set to the original
// path and query when next is given and is not the login page itself.
func loginURL(next *url.URL) string {
	q := url.Values{"error": {LoginErrorFlag}}
	if next != nil && next.Path != model.LoginPath {
		target := next.Path
		if next.RawQuery != "" {
			target += "?" + next.RawQuery
		}
		q.Set("next", target)
	}
	return model.LoginPath + "?" + q.Encode()
}

func isPageRequest(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}
