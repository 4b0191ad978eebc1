// Package querysql is the SQL backend for the predicate compiler.
//
// It implements predicate.Algebra over Criterion values: parameterized SQL
// WHERE fragments. Clause values are NEVER interpolated into the SQL text -
// they always travel as ? parameters. Column names are the only interpolated
// piece, and they come from the trusted field mapping (internal/config), not
// from user input.
package querysql
