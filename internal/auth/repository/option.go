package repository

import "ministry-srv/internal/model"

type GetAccountOptions struct {
	Identifier string
}

// FindAssignmentOptions filters current assignments of one account and kind.
// A nil Scoping matches any scoping; otherwise every non-empty field must match exactly.
type FindAssignmentOptions struct {
	AccountID string
	Kind      model.RoleKind
	Scoping   *model.Scoping
}
