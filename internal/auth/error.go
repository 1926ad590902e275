package auth

import "errors"

var (
	ErrIdentifierRequired   = errors.New("identifier required")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountInactive      = errors.New("account inactive")
	ErrNoRoleAssigned       = errors.New("no current role assigned")
	ErrInvalidRoleKind      = errors.New("invalid role kind")
	ErrScopingRequired      = errors.New("role scoping required")
	ErrAssignmentNotCurrent = errors.New("role assignment not current")
	ErrUnauthenticated      = errors.New("unauthenticated")
)
