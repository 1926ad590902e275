package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"ministry-srv/internal/auth"
	"ministry-srv/internal/auth/repository"
	"ministry-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.SessionOutput, error) {
	identifier := strings.TrimSpace(ip.Identifier)
	if identifier == "" {
		uc.security.LoginRejected(ctx, "", "identifier required")
		return auth.SessionOutput{}, auth.ErrIdentifierRequired
	}

	acc, err := uc.repo.GetAccount(ctx, repository.GetAccountOptions{Identifier: identifier})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.security.LoginRejected(ctx, identifier, "account not found")
			return auth.SessionOutput{}, auth.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetAccount: %v", err)
		return auth.SessionOutput{}, err
	}

	if !acc.Active {
		uc.security.LoginRejected(ctx, identifier, "account inactive")
		return auth.SessionOutput{}, auth.ErrAccountInactive
	}

	roles, err := uc.currentRoles(ctx, acc.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.currentRoles: %v", err)
		return auth.SessionOutput{}, err
	}
	effective := loginRole(roles)
	if effective == nil {
		uc.security.LoginRejected(ctx, identifier, "no current role")
		return auth.SessionOutput{}, auth.ErrNoRoleAssigned
	}

	cred := model.Credential{
		Identifier: acc.Identifier,
		AccountID:  acc.ID,
		Name:       acc.Name,
		Role:       effective,
	}
	if len(roles) > 1 {
		cred.Assignments = make([]model.AssignmentRef, 0, len(roles))
		for _, r := range roles {
			cred.Assignments = append(cred.Assignments, model.RefOf(r))
		}
	}

	token, cred, err := uc.scope.CreateToken(cred)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.CreateToken: %v", err)
		return auth.SessionOutput{}, err
	}

	uc.security.LoginSucceeded(ctx, identifier, string(cred.Role.Kind()))
	return auth.SessionOutput{Token: token, Credential: cred}, nil
}

// currentRoles looks up every role kind concurrently and returns the ones
// found: login roles first in auth.LoginPrecedence order, then the
// switch-only roles. The first store failure aborts.
func (uc *usecase) currentRoles(ctx context.Context, accountID string) ([]model.Role, error) {
	kinds := append(auth.LoginPrecedence(), auth.SwitchOnlyRoles()...)
	found := make([]model.Role, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			a, err := uc.repo.FindCurrentAssignment(gctx, repository.FindAssignmentOptions{
				AccountID: accountID,
				Kind:      kind,
			})
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil
				}
				return err
			}

			r, err := a.Role()
			if err != nil {
				uc.l.Warnf(ctx, "internal.auth.usecase.currentRoles: assignment %s skipped: %v", a.ID, err)
				return nil
			}
			found[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roles := make([]model.Role, 0, len(found))
	for _, r := range found {
		if r != nil {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

// loginRole is the first role login may issue, or nil.
func loginRole(roles []model.Role) model.Role {
	for _, r := range roles {
		if slices.Contains(auth.LoginPrecedence(), r.Kind()) {
			return r
		}
	}
	return nil
}
