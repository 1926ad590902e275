package repository

import (
	"context"

	"ministry-srv/internal/model"
)

// Repository reads accounts and role assignments. It never writes.
//
//go:generate mockery --name Repository
type Repository interface {
	// GetAccount finds an account by cédula or username.
	GetAccount(ctx context.Context, opts GetAccountOptions) (model.Account, error)
	// FindCurrentAssignment returns the newest current assignment matching opts.
	FindCurrentAssignment(ctx context.Context, opts FindAssignmentOptions) (model.RoleAssignment, error)
}
