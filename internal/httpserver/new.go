package httpserver

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"ministry-srv/internal/middleware"
	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving and shutting down.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	mapOnce         sync.Once
	l               log.Logger
	host            string
	port            int
	shutdownTimeout time.Duration
	allowedOrigins  []string
	publicPaths     middleware.PublicPaths

	// Store
	db       *sql.DB
	dbDriver string

	// Auth & security
	scope     scope.Manager
	cookieCfg scope.CookieConfig
	csrfKey   []byte

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	// PublicPaths and PublicPrefixes extend the gatekeeper allow-list.
	PublicPaths    []string
	PublicPrefixes []string

	// Store
	DB       *sql.DB
	DBDriver string

	// Auth & security
	ScopeManager scope.Manager
	Cookie       scope.CookieConfig
	CSRFKey      []byte

	// External services, optional
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,
		publicPaths:     middleware.DefaultPublicPaths().Extend(cfg.PublicPaths, cfg.PublicPrefixes),

		db:       cfg.DB,
		dbDriver: cfg.DBDriver,

		scope:     cfg.ScopeManager,
		cookieCfg: cfg.Cookie,
		csrfKey:   cfg.CSRFKey,

		discord: cfg.Discord,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.scope == nil {
		return errors.New("scope manager is required")
	}
	if len(srv.csrfKey) != 32 {
		return errors.New("CSRF key must be 32 bytes")
	}

	return nil
}
