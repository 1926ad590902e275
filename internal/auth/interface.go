package auth

import (
	"context"

	"ministry-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login resolves the account's effective role and signs a credential for it.
	Login(ctx context.Context, ip LoginInput) (SessionOutput, error)
	// SwitchRole re-verifies the requested assignment against the store and
	// signs a new credential carrying it.
	SwitchRole(ctx context.Context, cred model.Credential, ip SwitchRoleInput) (SessionOutput, error)
}
