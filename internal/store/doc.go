// Package store implements the PostgreSQL persistence layer for properties
// and contacts.
//
// Write operations take the mapped, gate-checked field set as a
// map[string]any and build their SQL dynamically with squirrel; the legacy
// schema stores camelCase column names, so every built identifier is
// double-quoted. Integrity constraint violations are propagated unchanged
// to the caller, since they indicate an upstream logic error that must stay
// visible verbatim, while all other SQL-level failures are wrapped into the
// package's sentinel errors.
package store
