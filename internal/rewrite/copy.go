package rewrite

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/visit"
)

// Identity returns a fresh dispatch table that deep-copies a tree: every
// handler rebuilds its node from the already-copied children.
//
// Callers typically pass the result to visit.Extend and override a subset of
// kinds; the returned table is theirs to own, so each call builds a new one.
func Identity() *visit.Table {
	return visit.New().
		On(ast.KindTautology, func(n ast.Node, results []any) (any, error) {
			return &ast.Tautology{}, nil
		}).
		On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
			c := n.(*ast.Clause)
			return &ast.Clause{Field: c.Field, Value: c.Value}, nil
		}).
		On(ast.KindGrouping, func(n ast.Node, results []any) (any, error) {
			return &ast.Grouping{Child: results[0].(*ast.Expression)}, nil
		}).
		On(ast.KindNegation, func(n ast.Node, results []any) (any, error) {
			return &ast.Negation{Child: results[0].(*ast.Term)}, nil
		}).
		On(ast.KindTerm, func(n ast.Node, results []any) (any, error) {
			return &ast.Term{Child: results[0].(ast.Node)}, nil
		}).
		On(ast.KindConjunction, func(n ast.Node, results []any) (any, error) {
			return &ast.Conjunction{Left: results[0].(*ast.Term), Right: results[1].(*ast.Expression)}, nil
		}).
		On(ast.KindDisjunction, func(n ast.Node, results []any) (any, error) {
			return &ast.Disjunction{Left: results[0].(*ast.Term), Right: results[1].(*ast.Expression)}, nil
		}).
		On(ast.KindExpression, func(n ast.Node, results []any) (any, error) {
			return &ast.Expression{Child: results[0].(ast.Node)}, nil
		})
}

// Copy returns a structurally identical deep copy of expr.
func Copy(expr *ast.Expression) *ast.Expression {
	result, err := Identity().Walk(expr)
	if err != nil {
		// The identity table covers every node kind.
		panic(err)
	}
	return result.(*ast.Expression)
}
