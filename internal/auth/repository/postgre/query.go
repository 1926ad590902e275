package postgres

import (
	"fmt"
	"strings"

	"ministry-srv/internal/auth/repository"
	postgresPkg "ministry-srv/pkg/postgre"
)

func (r *implRepository) buildGetAccountQuery(opts repository.GetAccountOptions) (string, []interface{}) {
	c := accountColumns
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		postgresPkg.Columns(c.ID, c.Cedula, c.Username, c.Name, c.Active),
		postgresPkg.Ident(tableAccounts),
		postgresPkg.WhereAny(1, c.Cedula, c.Username),
	)
	return query, []interface{}{opts.Identifier}
}

func (r *implRepository) buildFindAssignmentQuery(opts repository.FindAssignmentOptions) (string, []interface{}) {
	c := assignmentColumns
	cols := []string{c.AccountID, c.Role}
	args := []interface{}{opts.AccountID, string(opts.Kind)}

	if s := opts.Scoping; s != nil {
		if s.Stage != "" {
			cols = append(cols, c.Stage)
			args = append(args, s.Stage)
		}
		if s.Day != "" {
			cols = append(cols, c.Day)
			args = append(args, s.Day)
		}
		if s.Week != 0 {
			cols = append(cols, c.Week)
			args = append(args, s.Week)
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(postgresPkg.Columns(c.ID, c.AccountID, c.Role, c.Current, c.Stage, c.Day, c.Week))
	sb.WriteString(" FROM ")
	sb.WriteString(postgresPkg.Ident(tableAssignments))
	sb.WriteString(" WHERE ")
	sb.WriteString(postgresPkg.WhereAll(1, cols...))
	sb.WriteString(" AND ")
	sb.WriteString(postgresPkg.Ident(c.Current))
	sb.WriteString(" = TRUE ORDER BY ")
	sb.WriteString(postgresPkg.Ident(c.CreatedAt))
	sb.WriteString(" DESC LIMIT 1")

	return sb.String(), args
}
