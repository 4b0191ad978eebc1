package query

import (
	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/canon"
	"github.com/genobase/filterexpr/internal/inspect"
	"github.com/genobase/filterexpr/internal/parser"
	"github.com/genobase/filterexpr/internal/predicate"
	"github.com/genobase/filterexpr/internal/rewrite"
)

// Parse converts filter expression text into an AST. Malformed input yields
// a *parser.SyntaxError and no partial tree.
func Parse(text string) (*ast.Expression, error) {
	return parser.Parse(text)
}

// Compose renders expr to its canonical textual form: "field:value" with no
// inner whitespace, single spaces around connectives, parentheses only for
// actual Grouping nodes. Reparsing the output reproduces a tree that prints
// identically.
func Compose(expr *ast.Expression) string {
	return canon.Compose(expr)
}

// Fingerprint returns the content-addressed identity of expr, derived from
// its canonical form. See canon.Fingerprint.
func Fingerprint(expr *ast.Expression) string {
	return canon.Fingerprint(expr)
}

// DeepCopy returns a structurally identical copy of expr sharing no nodes
// with the original.
func DeepCopy(expr *ast.Expression) *ast.Expression {
	return rewrite.Copy(expr)
}

// BuildQueryCriterion compiles expr into a single predicate in the caller's
// algebra. Errors from build propagate unchanged.
func BuildQueryCriterion(expr *ast.Expression, alg predicate.Algebra, build predicate.BuildClause) (predicate.Predicate, error) {
	return predicate.Compile(expr, alg, build)
}

// UpdateClauseValues returns a copy of expr with every clause value replaced
// by update(field, value); everything else is copied unchanged.
func UpdateClauseValues(expr *ast.Expression, update rewrite.UpdateFunc) *ast.Expression {
	return rewrite.UpdateValues(expr, update)
}

// TestClauses reports whether p holds for every clause leaf in expr,
// regardless of how the clauses are connected (see inspect.AllClauses).
func TestClauses(expr *ast.Expression, p inspect.PredicateFunc) bool {
	return inspect.AllClauses(expr, p)
}

// IsTautology reports whether expr is syntactically the bare "*" literal.
func IsTautology(expr *ast.Expression) bool {
	return inspect.IsTautology(expr)
}

// IsSingleton reports whether expr is syntactically a single sample:value
// clause.
func IsSingleton(expr *ast.Expression) bool {
	return inspect.IsSingleton(expr)
}

// MakeConjunction combines two expressions as "(left) and right".
//
// The left operand is forcibly parenthesized, so the result means exactly
// "left AND right" no matter which connectives either side contains - it
// never relies on the language's leftmost-keyword grouping rule. Both inputs
// are placed into the new tree as-is; callers that need the originals intact
// should pass copies.
func MakeConjunction(left, right *ast.Expression) *ast.Expression {
	return &ast.Expression{
		Child: &ast.Conjunction{
			Left:  &ast.Term{Child: &ast.Grouping{Child: left}},
			Right: right,
		},
	}
}
