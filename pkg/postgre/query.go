package postgres

import (
	"strings"

	"github.com/aarondl/strmangle"
)

// Queries use "$n" placeholders. Both lib/pq and modernc.org/sqlite bind them
// by position, so the same text runs on either store.

const (
	quote    = '"'
	quoteStr = string(quote)
)

// Ident quotes a table or column name.
func Ident(name string) string {
	return strmangle.IdentQuote(quote, quote, name)
}

// Columns renders a quoted, comma separated select list.
func Columns(cols ...string) string {
	return strings.Join(strmangle.IdentQuoteSlice(quote, quote, cols), ", ")
}

// WhereAll renders `"a"=$start AND "b"=$start+1 ...`.
func WhereAll(start int, cols ...string) string {
	return strmangle.WhereClause(quoteStr, quoteStr, start, cols)
}

// WhereAny renders `"a"=$n OR "b"=$n`, binding one argument to every column.
func WhereAny(n int, cols ...string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strmangle.WhereClause(quoteStr, quoteStr, n, []string{col})
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
