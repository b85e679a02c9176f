package mapping

import "fmt"

// Pair binds one externally visible router field name to the schema column
// it is stored under.
type Pair struct {
	External string
	Internal string
}

// Table is an ordered collection of translation pairs. Tables are built once
// at package initialisation and never mutated afterwards, so they are safe
// to share across concurrent requests without locking.
type Table []Pair

// PropertyTable translates property router field names to property columns.
// The pairs must match the historical API surface byte for byte; renaming
// either side breaks compatibility with stored data and existing clients.
var PropertyTable = Table{
	{External: "price", Internal: "purchasePrice"},
	{External: "coldRent", Internal: "baseRent"},
	{External: "warmRent", Internal: "totalRent"},
	{External: "balconyArea", Internal: "balconyTerraceArea"},
	{External: "parkingCount", Internal: "parkingSpaces"},
	{External: "flooringTypes", Internal: "flooring"},
	{External: "heatingIncludedInAdditional", Internal: "heatingCostsInServiceCharge"},
	{External: "monthlyRentalIncome", Internal: "rentalIncome"},
}

// ContactTable translates contact router field names to contact columns.
var ContactTable = Table{
	{External: "phone", Internal: "phoneNumber"},
	{External: "mobile", Internal: "mobileNumber"},
	{External: "zip", Internal: "zipCode"},
	{External: "notes", Internal: "remarks"},
}

// Check verifies the table's disjointness invariant: external names are
// unique, internal names are unique, and no external name doubles as an
// internal name of another pair. A violation would make the translation
// ambiguous (a chained rename whose result depends on pair order) or lose
// data silently when two externals collapse onto one column.
//
// Check is meant to run once at startup; a non-nil result is fatal.
func (t Table) Check() error {
	externals := make(map[string]struct{}, len(t))
	internals := make(map[string]struct{}, len(t))

	for _, pair := range t {
		if pair.External == "" || pair.Internal == "" {
			return fmt.Errorf("%w: empty name in pair %q -> %q", ErrAmbiguousMapping, pair.External, pair.Internal)
		}
		if _, ok := externals[pair.External]; ok {
			return fmt.Errorf("%w: duplicate external name %q", ErrAmbiguousMapping, pair.External)
		}
		if _, ok := internals[pair.Internal]; ok {
			return fmt.Errorf("%w: duplicate internal name %q", ErrAmbiguousMapping, pair.Internal)
		}
		externals[pair.External] = struct{}{}
		internals[pair.Internal] = struct{}{}
	}

	for _, pair := range t {
		if _, ok := internals[pair.External]; ok {
			return fmt.Errorf("%w: external name %q is also an internal name", ErrAmbiguousMapping, pair.External)
		}
	}

	return nil
}

// MapFields renames every key of payload that appears in the table's
// external column to its internal counterpart. All other keys pass through
// untouched, values are carried as-is (no coercion, no nil handling).
//
// The input map is never mutated; the result is a fresh map. Pure and
// synchronous.
func (t Table) MapFields(payload map[string]any) map[string]any {
	mapped := make(map[string]any, len(payload))
	for key, value := range payload {
		mapped[key] = value
	}

	for _, pair := range t {
		value, ok := mapped[pair.External]
		if !ok {
			continue
		}
		delete(mapped, pair.External)
		mapped[pair.Internal] = value
	}

	return mapped
}
