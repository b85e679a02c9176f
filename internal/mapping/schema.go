package mapping

import (
	"reflect"
	"sort"
	"strings"
)

// FieldSet is the set of column names a write may legitimately target.
type FieldSet map[string]struct{}

// FieldsOf derives a FieldSet from the db struct tags of the given entity
// model. The model structs are the single authoritative description of the
// persisted schema (the migrations test keeps them honest against the SQL),
// so the set is never hand-maintained and cannot drift from the code that
// scans rows.
//
// model must be a struct or a pointer to one; anything else panics, since a
// wrong argument here is a programming error, not a runtime condition.
func FieldsOf(model any) FieldSet {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic("mapping: FieldsOf requires a struct model")
	}

	set := make(FieldSet, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		// tolerate options like `db:"name,omitempty"`
		if idx := strings.IndexByte(tag, ','); idx >= 0 {
			tag = tag[:idx]
		}
		set[tag] = struct{}{}
	}

	return set
}

// Contains reports whether field is a known column.
func (s FieldSet) Contains(field string) bool {
	_, ok := s[field]
	return ok
}

// UnknownFields returns every key of payload that is not a known column,
// sorted for deterministic error messages. An empty result means the
// payload is fully schema-aligned.
//
// This is the pre-write gate: services call it after MapFields and refuse
// the write when the result is non-empty, instead of letting the database
// layer drop the fields silently.
func (s FieldSet) UnknownFields(payload map[string]any) []string {
	var unknown []string
	for key := range payload {
		if !s.Contains(key) {
			unknown = append(unknown, key)
		}
	}

	sort.Strings(unknown)
	return unknown
}

// Names returns the sorted list of all known columns. Useful for
// diagnostics and tests.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
