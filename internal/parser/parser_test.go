package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genobase/filterexpr/internal/ast"
)

func TestParseClause(t *testing.T) {
	expr, err := Parse("sample:3")
	require.NoError(t, err)

	term, ok := expr.Child.(*ast.Term)
	require.True(t, ok)
	clause, ok := term.Child.(*ast.Clause)
	require.True(t, ok)
	assert.Equal(t, "sample", clause.Field)
	assert.Equal(t, "3", clause.Value)
}

func TestParseClauseWhitespaceAroundColon(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"space before colon", "sample :3"},
		{"space after colon", "sample: 3"},
		{"space both sides", "sample : 3"},
		{"surrounding whitespace", "  sample:3  "},
		{"tabs and newlines", "\tsample\t:\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			clause := expr.Child.(*ast.Term).Child.(*ast.Clause)
			assert.Equal(t, "sample", clause.Field)
			assert.Equal(t, "3", clause.Value)
		})
	}
}

func TestParseFieldSymbols(t *testing.T) {
	tests := []struct {
		input string
		field string
		value string
	}{
		{"s:a", "s", "a"},
		{"group.name:x", "group.name", "x"},
		{"a_b-c.d:v", "a_b-c.d", "v"},
		{"s1:2", "s1", "2"},
		{"andx:1", "andx", "1"}, // keyword prefix is still a symbol
		{"nota:1", "nota", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			clause := expr.Child.(*ast.Term).Child.(*ast.Clause)
			assert.Equal(t, tt.field, clause.Field)
			assert.Equal(t, tt.value, clause.Value)
		})
	}
}

func TestParseValueCharacters(t *testing.T) {
	// Values take any run of characters excluding whitespace and parens.
	tests := []struct {
		input string
		value string
	}{
		{"s:a:b", "a:b"},
		{"s:*", "*"},
		{"s:1,2,3", "1,2,3"},
		{"s:Ünïcøde", "Ünïcøde"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			clause := expr.Child.(*ast.Term).Child.(*ast.Clause)
			assert.Equal(t, tt.value, clause.Value)
		})
	}
}

func TestParseTautology(t *testing.T) {
	expr, err := Parse("*")
	require.NoError(t, err)
	term := expr.Child.(*ast.Term)
	assert.IsType(t, &ast.Tautology{}, term.Child)
}

func TestParseNegation(t *testing.T) {
	expr, err := Parse("not sample:4")
	require.NoError(t, err)

	neg, ok := expr.Child.(*ast.Term).Child.(*ast.Negation)
	require.True(t, ok)
	clause := neg.Child.Child.(*ast.Clause)
	assert.Equal(t, "4", clause.Value)
}

func TestParseDoubleNegation(t *testing.T) {
	expr, err := Parse("not not *")
	require.NoError(t, err)

	outer := expr.Child.(*ast.Term).Child.(*ast.Negation)
	inner, ok := outer.Child.Child.(*ast.Negation)
	require.True(t, ok)
	assert.IsType(t, &ast.Tautology{}, inner.Child.Child)
}

func TestParseGrouping(t *testing.T) {
	expr, err := Parse("(sample:a)")
	require.NoError(t, err)

	grouping, ok := expr.Child.(*ast.Term).Child.(*ast.Grouping)
	require.True(t, ok)
	clause := grouping.Child.Child.(*ast.Term).Child.(*ast.Clause)
	assert.Equal(t, "sample", clause.Field)
}

func TestParseConjunction(t *testing.T) {
	expr, err := Parse("sample:1 and group:2")
	require.NoError(t, err)

	conj, ok := expr.Child.(*ast.Conjunction)
	require.True(t, ok)
	left := conj.Left.Child.(*ast.Clause)
	assert.Equal(t, "sample", left.Field)
	right := conj.Right.Child.(*ast.Term).Child.(*ast.Clause)
	assert.Equal(t, "group", right.Field)
}

// The leftmost connective keyword wins and takes the entire remainder as its
// right operand. No conventional precedence exists.
func TestParseGroupingRule(t *testing.T) {
	t.Run("and then or", func(t *testing.T) {
		expr, err := Parse("s:a and s:b or s:c")
		require.NoError(t, err)

		conj, ok := expr.Child.(*ast.Conjunction)
		require.True(t, ok, "outermost node follows the FIRST keyword")
		_, ok = conj.Right.Child.(*ast.Disjunction)
		require.True(t, ok, "right operand is the whole remainder")
	})

	t.Run("or then and", func(t *testing.T) {
		expr, err := Parse("s:a or s:b and s:c")
		require.NoError(t, err)

		disj, ok := expr.Child.(*ast.Disjunction)
		require.True(t, ok)
		_, ok = disj.Right.Child.(*ast.Conjunction)
		require.True(t, ok)
	})

	t.Run("four terms right-lean", func(t *testing.T) {
		expr, err := Parse("sample:1 and sample:2 or sample:3 and sample:4")
		require.NoError(t, err)

		conj := expr.Child.(*ast.Conjunction)
		disj := conj.Right.Child.(*ast.Disjunction)
		inner := disj.Right.Child.(*ast.Conjunction)
		assert.Equal(t, "3", inner.Left.Child.(*ast.Clause).Value)
	})
}

func TestParseExplicitGroupingOverridesRule(t *testing.T) {
	expr, err := Parse("(s:a and s:b) or s:c")
	require.NoError(t, err)

	disj, ok := expr.Child.(*ast.Disjunction)
	require.True(t, ok)
	grouping, ok := disj.Left.Child.(*ast.Grouping)
	require.True(t, ok)
	_, ok = grouping.Child.Child.(*ast.Conjunction)
	assert.True(t, ok)
}

func TestParseKeywordBoundary(t *testing.T) {
	// "and(" is the keyword; "andx" is not.
	expr, err := Parse("s:a and(s:b)")
	require.NoError(t, err)
	_, ok := expr.Child.(*ast.Conjunction)
	assert.True(t, ok)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"bare not", "not"},
		{"bare colon", ":"},
		{"double colon", "::"},
		{"empty grouping", "()"},
		{"tautology clause", "* : *"},
		{"empty clause value", "x:()"},
		{"keyword as field", "or : bla"},
		{"and as field", "and:1"},
		{"not as field", "not:1"},
		{"trailing garbage", "* ()"},
		{"trailing term", "sample:1 sample:2"},
		{"dangling and", "sample:1 and"},
		{"leading or", "or sample:1"},
		{"unclosed grouping", "(sample:1"},
		{"unopened grouping", "sample:1)"},
		{"missing value", "sample:"},
		{"digit-leading field", "1x:2"},
		{"empty grouping after term", "sample:1 and ()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			assert.Nil(t, expr, "no partial tree on failure")
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.GreaterOrEqual(t, syntaxErr.Offset, 0)
		})
	}
}

func TestParseDepthBound(t *testing.T) {
	t.Run("deeply nested grouping rejected", func(t *testing.T) {
		depth := 2000
		input := strings.Repeat("(", depth) + "*" + strings.Repeat(")", depth)
		expr, err := Parse(input)
		assert.Nil(t, expr)
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Message, "deep")
	})

	t.Run("long chain rejected", func(t *testing.T) {
		input := "s:a" + strings.Repeat(" and s:a", 2000)
		_, err := Parse(input)
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("reasonable nesting accepted", func(t *testing.T) {
		depth := 100
		input := strings.Repeat("(", depth) + "*" + strings.Repeat(")", depth)
		_, err := Parse(input)
		assert.NoError(t, err)
	})
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("sample:1 and")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Error(), "syntax error at offset")
}
