package scope

import (
	"context"

	"ministry-srv/internal/model"
)

// SetCredentialToContext attaches a verified credential to ctx.
func SetCredentialToContext(ctx context.Context, cred model.Credential) context.Context {
	return context.WithValue(ctx, credentialCtxKey{}, cred)
}

// GetCredentialFromContext returns the credential the gatekeeper attached, if any.
func GetCredentialFromContext(ctx context.Context) (model.Credential, bool) {
	cred, ok := ctx.Value(credentialCtxKey{}).(model.Credential)
	return cred, ok
}
