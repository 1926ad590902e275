package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	minSessionSecretLength = 32
)

// DotEnvPath is read before the environment when it exists.
var DotEnvPath = ".env"

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Store Configuration
	Database DatabaseConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig

	// Authentication & Security Configuration
	Session    SessionConfig
	Gatekeeper GatekeeperConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig decides environment-aware features such as the cookie name.
type EnvironmentConfig struct {
	Name string `env:"APP_ENV" envDefault:"development"`
}

type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"GIN_MODE" envDefault:"release"`
	// AllowedOrigins enables CORS for the JSON API when not empty.
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"postgres"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"ministerio"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"require"`
}

// SQLiteConfig is used for local development and tests.
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"ministerio.db"`
	// Migrate applies the bundled development schema on connect.
	Migrate bool `env:"SQLITE_MIGRATE" envDefault:"true"`
}

type SessionConfig struct {
	SecretKey string `env:"SESSION_SECRET,required"`
	Issuer    string `env:"SESSION_ISSUER" envDefault:"ministry-srv"`
}

// GatekeeperConfig adds paths to the built-in public allow-list.
type GatekeeperConfig struct {
	PublicPaths    []string `env:"GATEKEEPER_PUBLIC_PATHS" envSeparator:","`
	PublicPrefixes []string `env:"GATEKEEPER_PUBLIC_PREFIXES" envSeparator:","`
}

type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// IsProduction reports whether the service runs in production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, EnvProduction)
}

// Load reads DotEnvPath (if present) and then the process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(DotEnvPath); err == nil {
		if err := godotenv.Load(DotEnvPath); err != nil {
			return nil, fmt.Errorf("config.godotenv(%s): %w", DotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.os.Stat(%s): %w", DotEnvPath, err)
	}

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Session.SecretKey) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLength)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.DBName == "" {
			return errors.New("POSTGRES_HOST and POSTGRES_DB are required")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPServer.Port)
	}

	for _, p := range append(c.Gatekeeper.PublicPaths, c.Gatekeeper.PublicPrefixes...) {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("gatekeeper public path %q must start with /", p)
		}
	}
	return nil
}
