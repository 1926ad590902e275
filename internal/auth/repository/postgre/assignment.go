package postgres

import (
	"context"
	"database/sql"

	"ministry-srv/internal/auth/repository"
	"ministry-srv/internal/model"
	postgresPkg "ministry-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) FindCurrentAssignment(ctx context.Context, opts repository.FindAssignmentOptions) (model.RoleAssignment, error) {
	// A malformed account reference cannot match any row.
	if err := postgresPkg.IsUUID(opts.AccountID); err != nil {
		return model.RoleAssignment{}, repository.ErrNotFound
	}

	query, args := r.buildFindAssignmentQuery(opts)

	var row assignmentRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleAssignment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.auth.repository.postgres.FindCurrentAssignment.Bind: %v", err)
		return model.RoleAssignment{}, errors.Wrapf(err, "finding current %s assignment", opts.Kind)
	}

	return row.toModel(), nil
}
