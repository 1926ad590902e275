package scope

import (
	"net/http"

	"ministry-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// NewCookieConfig picks the cookie name for the environment. The __Host-
// prefix requires Secure, Path=/ and no Domain, so it is only used in production.
func NewCookieConfig(production bool) CookieConfig {
	if production {
		return CookieConfig{Name: CookieNameProduction, Secure: true}
	}
	return CookieConfig{Name: CookieNameDefault}
}

// SetSessionCookie stores token for model.SessionTTL.
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, token, int(model.SessionTTL.Seconds()), cookiePath, "", cfg.Secure, true)
}

// ClearSessionCookies expires both cookie names so a session set under either
// environment is removed.
func ClearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieNameProduction, "", -1, cookiePath, "", true, true)
	c.SetCookie(CookieNameDefault, "", -1, cookiePath, "", false, true)
}

// GetSessionCookie returns the raw token, if the request carries one.
func GetSessionCookie(c *gin.Context, cfg CookieConfig) (string, bool) {
	token, err := c.Cookie(cfg.Name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
