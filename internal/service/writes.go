package service

import "github.com/agenturjaeger/immocrm/internal/mapping"

// reservedFields are server-managed columns no payload may ever set. They
// are silently dropped instead of rejected so that clients can echo back a
// record they previously read.
var reservedFields = []string{"id", "createdAt", "updatedAt"}

// prepareWrite translates a raw router payload into schema column names and
// runs the pre-write gate. A payload carrying a field the schema does not
// know is refused with a [mapping.UnknownFieldsError] instead of being
// silently truncated by the database layer.
func prepareWrite(table mapping.Table, schema mapping.FieldSet, entity string, payload map[string]any) (map[string]any, error) {
	fields := table.MapFields(payload)
	for _, reserved := range reservedFields {
		delete(fields, reserved)
	}

	if unknown := schema.UnknownFields(fields); len(unknown) > 0 {
		return nil, &mapping.UnknownFieldsError{Entity: entity, Fields: unknown}
	}

	return fields, nil
}

// dropEmpty removes nil values and empty strings from a write set. Creates
// never persist them; updates keep them, because on an update an explicit
// null means "clear this field".
func dropEmpty(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[name] = value
	}

	return out
}
