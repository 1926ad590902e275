package usecase

import (
	"context"
	"errors"

	"ministry-srv/internal/auth"
	"ministry-srv/internal/auth/repository"
	"ministry-srv/internal/model"
)

func (uc *usecase) SwitchRole(ctx context.Context, cred model.Credential, ip auth.SwitchRoleInput) (auth.SessionOutput, error) {
	if cred.AccountID == "" {
		return auth.SessionOutput{}, auth.ErrUnauthenticated
	}

	kind, err := model.ParseRoleKind(ip.Kind)
	if err != nil || kind == model.RolePending {
		uc.security.RoleSwitchDenied(ctx, cred.AccountID, ip.Kind, "invalid role kind")
		return auth.SessionOutput{}, auth.ErrInvalidRoleKind
	}

	role, err := model.NewRole(kind, ip.Scoping)
	if err != nil {
		uc.security.RoleSwitchDenied(ctx, cred.AccountID, string(kind), "scoping required")
		return auth.SessionOutput{}, auth.ErrScopingRequired
	}

	scoping := role.Scoping()
	_, err = uc.repo.FindCurrentAssignment(ctx, repository.FindAssignmentOptions{
		AccountID: cred.AccountID,
		Kind:      kind,
		Scoping:   &scoping,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.security.RoleSwitchDenied(ctx, cred.AccountID, string(kind), "assignment not current")
			return auth.SessionOutput{}, auth.ErrAssignmentNotCurrent
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.SwitchRole.FindCurrentAssignment: %v", err)
		return auth.SessionOutput{}, err
	}

	next := model.Credential{
		Identifier:  cred.Identifier,
		AccountID:   cred.AccountID,
		Name:        cred.Name,
		Role:        role,
		Assignments: cred.Assignments,
	}
	token, next, err := uc.scope.CreateToken(next)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.SwitchRole.CreateToken: %v", err)
		return auth.SessionOutput{}, err
	}

	uc.security.RoleSwitched(ctx, cred.AccountID, string(kind))
	return auth.SessionOutput{Token: token, Credential: next}, nil
}
