package scope

import (
	"time"

	"ministry-srv/internal/model"

	"github.com/golang-jwt/jwt"
)

// Config configures a Manager.
type Config struct {
	SecretKey string
	Issuer    string
	// TTL defaults to model.SessionTTL.
	TTL time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Payload is the JWT claim set. Subject carries the account identifier.
type Payload struct {
	jwt.StandardClaims
	AccountID string         `json:"accountId"`
	Name      string         `json:"name,omitempty"`
	Role      model.RoleKind `json:"role"`
	model.Scoping
	Assignments []model.AssignmentRef `json:"assignments,omitempty"`
}

type implManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	clock  func() time.Time
}

// CookieConfig names the session cookie for the running environment.
type CookieConfig struct {
	Name   string
	Secure bool
}

type credentialCtxKey struct{}
