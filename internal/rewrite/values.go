package rewrite

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/visit"
)

// UpdateFunc maps a clause's field and current value to its replacement
// value. It must be total over values the grammar can produce; it is never
// called with anything else.
type UpdateFunc func(field, value string) string

// UpdateValues returns a copy of expr in which every clause's value has been
// replaced by update(field, value). All other nodes are copied unchanged via
// the identity table.
func UpdateValues(expr *ast.Expression, update UpdateFunc) *ast.Expression {
	table := visit.Extend(Identity()).
		On(ast.KindClause, func(n ast.Node, results []any) (any, error) {
			c := n.(*ast.Clause)
			return &ast.Clause{Field: c.Field, Value: update(c.Field, c.Value)}, nil
		})

	result, err := table.Walk(expr)
	if err != nil {
		panic(err)
	}
	return result.(*ast.Expression)
}
