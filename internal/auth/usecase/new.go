package usecase

import (
	"ministry-srv/internal/auth"
	"ministry-srv/internal/auth/repository"
	pkgAuth "ministry-srv/pkg/auth"
	pkgLog "ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	scope    scope.Manager
	security pkgAuth.SecurityLogger
}

func New(l pkgLog.Logger, repo repository.Repository, scopeManager scope.Manager, security pkgAuth.SecurityLogger) auth.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		scope:    scopeManager,
		security: security,
	}
}
