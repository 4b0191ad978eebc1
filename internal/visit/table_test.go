package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genobase/filterexpr/internal/ast"
)

func constant(v any) Handler {
	return func(n ast.Node, results []any) (any, error) {
		return v, nil
	}
}

func TestDispatchKindHandler(t *testing.T) {
	table := New().On(ast.KindClause, constant("clause"))

	result, err := table.Dispatch(&ast.Clause{Field: "sample", Value: "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "clause", result)
}

func TestDispatchCategoryFallback(t *testing.T) {
	table := New().
		On(ast.KindClause, constant("specific")).
		OnCategory(ast.CategoryLeaf, constant("leaf"))

	// Kind registration wins over category.
	result, err := table.Dispatch(&ast.Clause{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "specific", result)

	// Tautology has no kind handler; its Leaf category catches it.
	result, err = table.Dispatch(&ast.Tautology{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "leaf", result)
}

func TestDispatchCatchAll(t *testing.T) {
	table := New().
		OnCategory(ast.CategoryLeaf, constant("leaf")).
		OnAny(constant("any"))

	result, err := table.Dispatch(&ast.Conjunction{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "any", result)

	result, err = table.Dispatch(&ast.Tautology{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "leaf", result)
}

func TestDispatchBaseChain(t *testing.T) {
	base := New().
		On(ast.KindClause, constant("base clause")).
		On(ast.KindTautology, constant("base tautology"))

	derived := Extend(base).On(ast.KindClause, constant("derived clause"))

	// Override takes effect.
	result, err := derived.Dispatch(&ast.Clause{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "derived clause", result)

	// Unregistered kind falls back to the base.
	result, err = derived.Dispatch(&ast.Tautology{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "base tautology", result)
}

func TestDispatchChainsCompose(t *testing.T) {
	root := New().On(ast.KindTautology, constant("root"))
	middle := Extend(root).On(ast.KindClause, constant("middle"))
	top := Extend(middle).On(ast.KindNegation, constant("top"))

	// Two-level chase: top -> middle -> root.
	result, err := top.Dispatch(&ast.Tautology{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "root", result)
}

func TestDispatchNoHandler(t *testing.T) {
	base := New().On(ast.KindClause, constant("clause"))
	derived := Extend(base)

	_, err := derived.Dispatch(&ast.Conjunction{}, nil)
	var noHandler *NoHandlerError
	require.ErrorAs(t, err, &noHandler)
	assert.Equal(t, ast.KindConjunction, noHandler.Kind)
	assert.Contains(t, noHandler.Error(), "Conjunction")
}

func TestWalkThroughTable(t *testing.T) {
	// Count nodes via a catch-all that sums child results.
	table := New().OnAny(func(n ast.Node, results []any) (any, error) {
		count := 1
		for _, r := range results {
			count += r.(int)
		}
		return count, nil
	})

	tree := &ast.Expression{
		Child: &ast.Term{
			Child: &ast.Negation{
				Child: &ast.Term{Child: &ast.Tautology{}},
			},
		},
	}

	result, err := table.Walk(tree)
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}
