package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"purchasePrice"`, quoteIdent("purchasePrice"))
	// embedded quotes are stripped, not escaped
	assert.Equal(t, `"x"`, quoteIdent(`x"`))
}

func TestQuoteFields(t *testing.T) {
	quoted := quoteFields(map[string]any{"baseRent": 500.0, "title": "x"})
	assert.Equal(t, map[string]any{`"baseRent"`: 500.0, `"title"`: "x"}, quoted)
}

func TestQuoteColumns_KeepsOrder(t *testing.T) {
	quoted := quoteColumns([]string{"id", "zipCode", "city"})
	assert.Equal(t, []string{`"id"`, `"zipCode"`, `"city"`}, quoted)
}

func TestBuiltUpdate_QuotesIdentifiers(t *testing.T) {
	query, args, err := psql.Update(quoteIdent("properties")).
		SetMap(quoteFields(map[string]any{"purchasePrice": 1.0})).
		Set(quoteIdent("updatedAt"), sq.Expr("NOW()")).
		Where(sq.Eq{quoteIdent("id"): int64(1)}).
		ToSql()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, `UPDATE "properties" SET`))
	assert.Contains(t, query, `"purchasePrice" = $1`)
	assert.Contains(t, query, `"updatedAt" = NOW()`)
	assert.Contains(t, query, `"id" = $2`)
	assert.Equal(t, []any{1.0, int64(1)}, args)
}
