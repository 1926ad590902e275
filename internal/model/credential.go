package model

import "time"

// SessionTTL is the fixed lifetime of a credential.
const SessionTTL = 8 * time.Hour

// AssignmentRef identifies one role a multi-role account may switch to.
type AssignmentRef struct {
	Kind RoleKind `json:"role"`
	Scoping
}

// RefOf describes r as an AssignmentRef.
func RefOf(r Role) AssignmentRef {
	return AssignmentRef{Kind: r.Kind(), Scoping: r.Scoping()}
}

// Credential is the signed, client-held session. It is never stored server side.
type Credential struct {
	Identifier  string
	AccountID   string
	Name        string
	Role        Role
	Assignments []AssignmentRef
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// Home is the landing page of the credential's role.
func (c Credential) Home() string {
	return RoleToHome(c.Role)
}
