// Package config loads the field mapping that binds filter expression
// fields to storage columns.
//
// The mapping is the schema boundary between the expression language and the
// SQL backend: only mapped fields compile, and the mapped column names are
// what ends up interpolated into criteria, so they are validated to be plain
// SQL identifiers on load.
package config
