package canon

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/visit"
)

// printTable renders each node kind to its canonical text. Wrapper nodes
// pass their child's text through; Grouping is the only source of
// parentheses in the output.
var printTable = visit.New().
	On(ast.KindTautology, func(n ast.Node, results []any) (any, error) {
		return "*", nil
	}).
	On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
		c := n.(*ast.Clause)
		return c.Field + ":" + c.Value, nil
	}).
	On(ast.KindGrouping, func(n ast.Node, results []any) (any, error) {
		return "(" + results[0].(string) + ")", nil
	}).
	On(ast.KindNegation, func(n ast.Node, results []any) (any, error) {
		return "not " + results[0].(string), nil
	}).
	On(ast.KindConjunction, func(n ast.Node, results []any) (any, error) {
		return results[0].(string) + " and " + results[1].(string), nil
	}).
	On(ast.KindDisjunction, func(n ast.Node, results []any) (any, error) {
		return results[0].(string) + " or " + results[1].(string), nil
	}).
	OnCategory(ast.CategoryUnary, func(n ast.Node, results []any) (any, error) {
		return results[0], nil
	})

// Compose renders expr to its canonical textual form.
//
// The output is exactly what the grammar's compose rule produces for the
// same tree: a hard compatibility contract, since stored filters are kept as
// canonical text and compared by it.
func Compose(expr *ast.Expression) string {
	result, err := printTable.Walk(expr)
	if err != nil {
		// The print table covers every node kind; a miss means the node set
		// changed without updating it.
		panic(err)
	}
	return result.(string)
}
