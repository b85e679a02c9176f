package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousMapping is returned by [Table.Check] when a translation table
// violates its disjointness invariant. It indicates a programming error in
// the table definition and is fatal at startup.
var ErrAmbiguousMapping = errors.New("ambiguous field mapping table")

// UnknownFieldsError rejects a write whose payload contains keys that are
// neither mapped router names nor schema columns. It lists every offending
// key so the caller can fix the whole request at once.
type UnknownFieldsError struct {
	// Entity names the write target, e.g. "property" or "contact".
	Entity string

	// Fields are the offending keys, sorted.
	Fields []string
}

func (e *UnknownFieldsError) Error() string {
	return fmt.Sprintf("unknown %s fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}
