package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ministry-srv/config"
	"ministry-srv/config/sqlite"
	"ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestConfig(t *testing.T) Config {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), config.SQLiteConfig{Path: ":memory:", Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sm, err := scope.New(scope.Config{SecretKey: testSecret})
	require.NoError(t, err)
	key, err := scope.DeriveKey(testSecret, "csrf")
	require.NoError(t, err)

	return Config{
		Port:         8080,
		Mode:         gin.TestMode,
		DB:           db,
		DBDriver:     config.DriverSQLite,
		ScopeManager: sm,
		Cookie:       scope.NewCookieConfig(false),
		CSRFKey:      key,
	}
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "port is required"},
		{name: "no database", mutate: func(c *Config) { c.DB = nil }, wantErr: "database is required"},
		{name: "no scope manager", mutate: func(c *Config) { c.ScopeManager = nil }, wantErr: "scope manager is required"},
		{name: "short csrf key", mutate: func(c *Config) { c.CSRFKey = []byte("short") }, wantErr: "CSRF key must be 32 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			tt.mutate(&cfg)
			srv, err := New(log.NewNop(), cfg)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), newTestConfig(t))
	require.NoError(t, err)
	h := srv.Handler()
	assert.Same(t, h, srv.Handler())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantField  string
	}{
		{name: "health", target: "/health", wantStatus: http.StatusOK, wantField: "healthy"},
		{name: "ready", target: "/ready", wantStatus: http.StatusOK, wantField: "ready"},
		{name: "live", target: "/live", wantStatus: http.StatusOK, wantField: "alive"},
		{name: "swagger", target: "/swagger/index.html", wantStatus: http.StatusOK},
		{name: "protected page", target: "/panel", wantStatus: http.StatusFound},
		{name: "me", target: "/api/auth/me", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			if tt.wantField != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantField, body["status"])
			}
		})
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	cfg := newTestConfig(t)
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	h := srv.Handler()
	require.NoError(t, cfg.DB.Close())

	for _, target := range []string{"/health", "/ready"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, target)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtraPublicPaths(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.PublicPaths = []string{"/robots.txt"}
	cfg.PublicPrefixes = []string{"/public/"}
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	h := srv.Handler()

	tests := []struct {
		target     string
		wantStatus int
	}{
		{target: "/robots.txt", wantStatus: http.StatusNotFound},
		{target: "/public/logo.png", wantStatus: http.StatusNotFound},
		{target: "/login", wantStatus: http.StatusOK},
		{target: "/privado", wantStatus: http.StatusFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
