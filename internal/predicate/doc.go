// Package predicate compiles expression trees into a caller-supplied
// boolean predicate algebra.
//
// The compiler does not evaluate anything. It folds the tree into a single
// composed predicate description - AND/OR/NOT over clause predicates - using
// whatever algebra the caller provides: a SQL criterion builder (see
// internal/querysql), an in-memory matcher in tests, or any other backend
// supporting the four operations of Algebra.
//
// The clause builder is the one point of contact with the caller's schema:
// it turns a (field, value) pair into a backend predicate and may fail, e.g.
// for an unknown field. Builder errors propagate out of Compile unwrapped.
package predicate
