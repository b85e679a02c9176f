package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder all repositories share: PostgreSQL dollar
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// quoteIdent double-quotes a column or table name. The legacy schema stores
// camelCase identifiers, which PostgreSQL folds to lowercase unless quoted.
// Field names reaching this point have already passed the schema gate, so
// quoting is about correctness, not sanitising.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, ``) + `"`
}

// quoteFields returns a copy of fields with every key double-quoted, ready
// for squirrel's SetMap.
func quoteFields(fields map[string]any) map[string]any {
	quoted := make(map[string]any, len(fields))
	for name, value := range fields {
		quoted[quoteIdent(name)] = value
	}

	return quoted
}

// quoteColumns double-quotes every column name in order.
func quoteColumns(columns []string) []string {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quoteIdent(column)
	}

	return quoted
}
