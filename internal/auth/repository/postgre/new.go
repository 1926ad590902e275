package postgres

import (
	"database/sql"

	"ministry-srv/internal/auth/repository"
	pkgLog "ministry-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

// New works with any database/sql handle opened on lib/pq or modernc.org/sqlite.
func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
