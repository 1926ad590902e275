package middleware

import (
	pkgAuth "ministry-srv/pkg/auth"
	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"
)

type Middleware struct {
	l         log.Logger
	scope     scope.Manager
	cookieCfg scope.CookieConfig
	security  pkgAuth.SecurityLogger
	discord   discord.IDiscord
	public    PublicPaths
}

// New builds the middleware set. discord may be nil.
func New(l log.Logger, scopeManager scope.Manager, cookieCfg scope.CookieConfig, security pkgAuth.SecurityLogger, d discord.IDiscord) Middleware {
	return Middleware{
		l:         l,
		scope:     scopeManager,
		cookieCfg: cookieCfg,
		security:  security,
		discord:   d,
		public:    DefaultPublicPaths(),
	}
}

// WithPublicPaths replaces the gatekeeper allow-list.
func (m Middleware) WithPublicPaths(p PublicPaths) Middleware {
	m.public = p
	return m
}
