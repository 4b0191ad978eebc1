// Package store persists named filters and evaluates filter expressions
// against the samples table.
//
// Filters are stored by canonical text, never by raw input: SaveFilter
// canonicalizes the expression and records its content-addressed fingerprint
// alongside a UUID, so the same expression always maps to the same identity
// regardless of incidental whitespace in what the user typed.
//
// SelectSamples is the storage-side consumer of the predicate compiler: it
// compiles an expression through querysql into a parameterized WHERE
// criterion and runs it with a deterministic ORDER BY.
package store
