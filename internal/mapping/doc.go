// Package mapping reconciles the public API field names of write requests
// with the column names of the persisted schema.
//
// Two tables ([PropertyTable], [ContactTable]) translate router field names
// to schema field names; [FieldSet] derives the set of legitimate columns
// from the entity model's db tags and reports request keys that belong to
// neither world. Services are expected to run that check before every write
// so that an unknown field fails the request instead of being silently
// dropped by the database layer.
package mapping
