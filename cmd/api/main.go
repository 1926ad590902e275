package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"ministry-srv/config"
	"ministry-srv/config/postgre"
	"ministry-srv/config/sqlite"
	"ministry-srv/internal/httpserver"
	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"
)

// @title Ministry Session API
// @description Sign-in, role resolution and session endpoints of the ministry CRM.
// @version 1
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Initialize store
	db, disconnect, err := connectDB(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to %s: %v", cfg.Database.Driver, err)
		return err
	}
	defer func() {
		if err := disconnect(ctx, db); err != nil {
			logger.Errorf(ctx, "Failed to disconnect from %s: %v", cfg.Database.Driver, err)
		}
	}()

	// Initialize Discord, optional
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, discord.Config{WebhookURL: cfg.Discord.WebhookURL})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Discord: %v", err)
			return err
		}
		defer discordClient.Close()
	} else {
		logger.Warn(ctx, "DISCORD_WEBHOOK_URL not set, bug reports are disabled")
	}

	// Initialize session signing
	scopeManager, err := scope.New(scope.Config{
		SecretKey: cfg.Session.SecretKey,
		Issuer:    cfg.Session.Issuer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize session signing: %v", err)
		return err
	}
	csrfKey, err := scope.DeriveKey(cfg.Session.SecretKey, scope.CSRFKeyInfo)
	if err != nil {
		logger.Errorf(ctx, "Failed to derive CSRF key: %v", err)
		return err
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		PublicPaths:     cfg.Gatekeeper.PublicPaths,
		PublicPrefixes:  cfg.Gatekeeper.PublicPrefixes,

		// Store Configuration
		DB:       db,
		DBDriver: cfg.Database.Driver,

		// Authentication & Security Configuration
		ScopeManager: scopeManager,
		Cookie:       scope.NewCookieConfig(cfg.IsProduction()),
		CSRFKey:      csrfKey,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return err
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return err
	}
	return nil
}

func connectDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(context.Context, *sql.DB) error, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Connect(ctx, cfg.SQLite)
		return db, sqlite.Disconnect, err
	default:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		return db, postgre.Disconnect, err
	}
}
