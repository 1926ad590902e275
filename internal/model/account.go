package model

// Account is a ministry server who may sign in. Accounts are managed elsewhere.
type Account struct {
	ID         string
	Identifier string
	Name       string
	Active     bool
}

// RoleAssignment grants an account a role. Only current assignments count.
type RoleAssignment struct {
	ID        string
	AccountID string
	Kind      RoleKind
	Current   bool
	Scoping   Scoping
}

// Role converts the assignment into its credential variant.
func (a RoleAssignment) Role() (Role, error) {
	if a.Kind == RolePending {
		return nil, ErrUnknownRoleKind
	}
	return NewRole(a.Kind, a.Scoping)
}
