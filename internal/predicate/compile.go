package predicate

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/visit"
)

// Predicate is an opaque value in the caller's predicate algebra. The
// compiler never looks inside one; it only routes predicates between the
// algebra's operations.
type Predicate = any

// Algebra is the abstract boolean algebra a backend supplies: a universal
// TRUE plus NOT, AND and OR over its own predicate representation.
type Algebra interface {
	// True returns the predicate matching everything.
	True() Predicate

	// Not negates a predicate.
	Not(p Predicate) Predicate

	// And conjoins two predicates.
	And(left, right Predicate) Predicate

	// Or disjoins two predicates.
	Or(left, right Predicate) Predicate
}

// BuildClause translates one field:value clause into a backend predicate.
// An error (unknown field, malformed value for the backend) aborts
// compilation and reaches the caller unchanged.
type BuildClause func(field, value string) (Predicate, error)

// Compile folds expr into a single predicate in alg's algebra.
//
// Tautology compiles to alg.True, clauses go through build, Negation to
// alg.Not, Conjunction and Disjunction to alg.And and alg.Or; wrapper nodes
// pass their child's predicate through untouched.
func Compile(expr *ast.Expression, alg Algebra, build BuildClause) (Predicate, error) {
	table := visit.New().
		On(ast.KindTautology, func(n ast.Node, results []any) (any, error) {
			return alg.True(), nil
		}).
		On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
			c := n.(*ast.Clause)
			return build(c.Field, c.Value)
		}).
		On(ast.KindNegation, func(n ast.Node, results []any) (any, error) {
			return alg.Not(results[0]), nil
		}).
		On(ast.KindConjunction, func(n ast.Node, results []any) (any, error) {
			return alg.And(results[0], results[1]), nil
		}).
		On(ast.KindDisjunction, func(n ast.Node, results []any) (any, error) {
			return alg.Or(results[0], results[1]), nil
		}).
		OnCategory(ast.CategoryUnary, func(n ast.Node, results []any) (any, error) {
			return results[0], nil
		})

	return table.Walk(expr)
}
