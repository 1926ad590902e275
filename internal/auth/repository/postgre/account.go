package postgres

import (
	"context"
	"database/sql"

	"ministry-srv/internal/auth/repository"
	"ministry-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) GetAccount(ctx context.Context, opts repository.GetAccountOptions) (model.Account, error) {
	query, args := r.buildGetAccountQuery(opts)

	var row accountRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.auth.repository.postgres.GetAccount.Bind: %v", err)
		return model.Account{}, errors.Wrap(err, "getting account")
	}

	return row.toModel(), nil
}
