package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/parser"
)

func mustParse(t *testing.T, input string) *ast.Expression {
	t.Helper()
	expr, err := parser.Parse(input)
	require.NoError(t, err)
	return expr
}

func TestComposeCanonicalizes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
	}{
		{"tautology", "*", "*"},
		{"clause", "sample:3", "sample:3"},
		{"space before colon", "s :a", "s:a"},
		{"grouped clause", "( sample : a )", "(sample:a)"},
		{"collapsed whitespace", "  *     or    sample    :   x  ", "* or sample:x"},
		{"negation", "not   sample:4", "not sample:4"},
		{"conjunction", "sample:1   and   group:2", "sample:1 and group:2"},
		{"keyword chain", "sample:1 and sample:2 or sample:3 and sample:4", "sample:1 and sample:2 or sample:3 and sample:4"},
		{"explicit grouping preserved", "(s:a and s:b) or s:c", "(s:a and s:b) or s:c"},
		{"nested grouping preserved", "((*))", "((*))"},
		{"negated grouping", "not (s:a or s:b)", "not (s:a or s:b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canonical, Compose(mustParse(t, tt.input)))
		})
	}
}

// Reparsing canonical output must reproduce a tree that prints identically.
func TestComposeIdempotent(t *testing.T) {
	inputs := []string{
		"*",
		"s :a",
		"( sample : a )",
		"  *     or    sample    :   x  ",
		"not not *",
		"sample:1 and (group:2 or sample:4) and not group:5",
		"(s:a and s:b) or not (s:c)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := Compose(mustParse(t, input))
			second := Compose(mustParse(t, first))
			assert.Equal(t, first, second)
		})
	}
}

// Grouping nodes are the only source of parentheses: none are invented for
// the implicit right-leaning structure.
func TestComposeNeverInventsParentheses(t *testing.T) {
	expr := mustParse(t, "s:a and s:b or s:c")
	assert.Equal(t, "s:a and s:b or s:c", Compose(expr))
}
