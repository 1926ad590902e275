package auth

import (
	"context"
	"strings"

	"ministry-srv/pkg/log"
)

type securityLogger struct {
	l log.Logger
}

func (s *securityLogger) LoginSucceeded(ctx context.Context, identifier, role string) {
	s.l.Infof(ctx, "SECURITY: event=%s identifier=%s role=%s", EventLoginSucceeded, MaskIdentifier(identifier), role)
}

func (s *securityLogger) LoginRejected(ctx context.Context, identifier, reason string) {
	s.l.Warnf(ctx, "SECURITY: event=%s identifier=%s reason=%s", EventLoginRejected, MaskIdentifier(identifier), reason)
}

func (s *securityLogger) RoleSwitched(ctx context.Context, accountID, role string) {
	s.l.Infof(ctx, "SECURITY: event=%s account=%s role=%s", EventRoleSwitched, accountID, role)
}

func (s *securityLogger) RoleSwitchDenied(ctx context.Context, accountID, role, reason string) {
	s.l.Warnf(ctx, "SECURITY: event=%s account=%s role=%s reason=%s", EventRoleSwitchDenied, accountID, role, reason)
}

func (s *securityLogger) CredentialRejected(ctx context.Context, path, reason string) {
	s.l.Warnf(ctx, "SECURITY: event=%s path=%s reason=%s", EventCredentialRejected, path, reason)
}

// MaskIdentifier keeps the last few characters: "1020304050" -> "******4050".
func MaskIdentifier(identifier string) string {
	r := []rune(identifier)
	if len(r) <= visibleSuffix {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-visibleSuffix) + string(r[len(r)-visibleSuffix:])
}
