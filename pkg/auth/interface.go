package auth

import (
	"context"

	"ministry-srv/pkg/log"
)

// SecurityLogger records authentication events. Identifiers are national ID
// numbers, so only their last digits are logged.
type SecurityLogger interface {
	LoginSucceeded(ctx context.Context, identifier, role string)
	LoginRejected(ctx context.Context, identifier, reason string)
	RoleSwitched(ctx context.Context, accountID, role string)
	RoleSwitchDenied(ctx context.Context, accountID, role, reason string)
	CredentialRejected(ctx context.Context, path, reason string)
}

func NewSecurityLogger(l log.Logger) SecurityLogger {
	return &securityLogger{l: l}
}
