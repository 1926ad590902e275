package http

import (
	"ministry-srv/internal/auth"
	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"
)

type Handler struct {
	l         log.Logger
	uc        auth.UseCase
	cookieCfg scope.CookieConfig
	discord   discord.IDiscord
}

// New returns the auth handler. d may be nil.
func New(l log.Logger, uc auth.UseCase, cookieCfg scope.CookieConfig, d discord.IDiscord) Handler {
	return Handler{
		l:         l,
		uc:        uc,
		cookieCfg: cookieCfg,
		discord:   d,
	}
}
