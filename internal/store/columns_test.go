package store

import (
	"testing"

	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/models"
)

// The scan column lists must cover exactly the db-tagged fields of the
// models, or row scans drift out of step with the schema.

func assertColumnsMatchModel(t *testing.T, columns []string, model any) {
	t.Helper()
	schema := mapping.FieldsOf(model)

	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if seen[column] {
			t.Errorf("column %q listed twice", column)
		}
		seen[column] = true

		if !schema.Contains(column) {
			t.Errorf("column %q has no db-tagged model field", column)
		}
	}

	for _, name := range schema.Names() {
		if !seen[name] {
			t.Errorf("model field %q missing from column list", name)
		}
	}
}

func TestPropertyColumns_MatchModel(t *testing.T) {
	assertColumnsMatchModel(t, propertyColumns, models.Property{})
}

func TestContactColumns_MatchModel(t *testing.T) {
	assertColumnsMatchModel(t, contactColumns, models.Contact{})
}
