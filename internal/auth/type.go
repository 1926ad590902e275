package auth

import "ministry-srv/internal/model"

type LoginInput struct {
	Identifier string
}

// SessionOutput is a freshly signed credential.
type SessionOutput struct {
	Token      string
	Credential model.Credential
}

// Redirect is where the client should go next.
func (o SessionOutput) Redirect() string {
	return o.Credential.Home()
}

type SwitchRoleInput struct {
	Kind    string
	Scoping model.Scoping
}
