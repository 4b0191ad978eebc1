package inspect

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/visit"
)

// SingletonField is the reserved field name a singleton expression must use.
const SingletonField = "sample"

// PredicateFunc tests one clause's field and value.
type PredicateFunc func(field, value string) bool

// reject is the catch-all: any node kind a tester does not explicitly
// recognize makes the whole answer false.
func reject(n ast.Node, results []any) (any, error) {
	return false, nil
}

// passThrough forwards a wrapper node's child verdict.
func passThrough(n ast.Node, results []any) (any, error) {
	return results[0], nil
}

// IsTautology reports whether expr is syntactically the literal "*",
// reached only through pass-through wrappers (Expression, Term).
//
// Any grouping, negation, clause or connective anywhere in the tree makes
// this false: "(*)" is not a tautology here because the Grouping node is
// real, and no boolean simplification is attempted.
func IsTautology(expr *ast.Expression) bool {
	table := visit.New().
		OnAny(reject).
		On(ast.KindTautology, func(n ast.Node, results []any) (any, error) {
			return true, nil
		}).
		On(ast.KindTerm, passThrough).
		On(ast.KindExpression, passThrough)

	return mustBool(table.Walk(expr))
}

// IsSingleton reports whether expr is syntactically exactly one clause whose
// field is the reserved "sample" identifier, reached only through
// pass-through wrappers.
func IsSingleton(expr *ast.Expression) bool {
	table := visit.New().
		OnAny(reject).
		On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
			return n.(*ast.Clause).Field == SingletonField, nil
		}).
		On(ast.KindTerm, passThrough).
		On(ast.KindExpression, passThrough)

	return mustBool(table.Walk(expr))
}

// AllClauses reports whether p holds for every clause leaf in expr.
//
// Child verdicts are combined with logical AND under every connective,
// Disjunction included. The question being answered is "is every literal
// clause in this expression acceptable under p" - how the clauses are
// logically combined is irrelevant to it, so an OR between a passing and a
// failing clause still fails. A bare tautology has no clauses and trivially
// passes.
func AllClauses(expr *ast.Expression, p PredicateFunc) bool {
	table := visit.New().
		OnAny(reject).
		On(ast.KindTautology, func(n ast.Node, results []any) (any, error) {
			return true, nil
		}).
		On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
			c := n.(*ast.Clause)
			return p(c.Field, c.Value), nil
		}).
		OnCategory(ast.CategoryUnary, passThrough).
		OnCategory(ast.CategoryBinary, func(n ast.Node, results []any) (any, error) {
			return results[0].(bool) && results[1].(bool), nil
		})

	return mustBool(table.Walk(expr))
}

func mustBool(result any, err error) bool {
	if err != nil {
		// Tester tables carry a catch-all, so dispatch cannot miss.
		panic(err)
	}
	return result.(bool)
}
