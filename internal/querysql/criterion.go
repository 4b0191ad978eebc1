package querysql

import (
	"fmt"

	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/predicate"
)

// Criterion is a composed SQL WHERE fragment with its positional parameters.
// Params line up with the ? placeholders in SQL, left to right.
type Criterion struct {
	SQL    string
	Params []any
}

// UnknownFieldError reports a clause whose field has no column mapping.
type UnknownFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown filter field %q", e.Field)
}

// Algebra implements predicate.Algebra over Criterion fragments.
//
// Composed fragments are always parenthesized, so the emitted SQL encodes
// exactly the tree's structure and never depends on the SQL engine's own
// operator precedence.
type Algebra struct{}

// True returns the universally true criterion.
func (Algebra) True() predicate.Predicate {
	return Criterion{SQL: "1 = 1"}
}

// Not negates a criterion.
func (Algebra) Not(p predicate.Predicate) predicate.Predicate {
	c := p.(Criterion)
	return Criterion{SQL: "NOT (" + c.SQL + ")", Params: c.Params}
}

// And conjoins two criteria.
func (Algebra) And(left, right predicate.Predicate) predicate.Predicate {
	return combine(left.(Criterion), right.(Criterion), "AND")
}

// Or disjoins two criteria.
func (Algebra) Or(left, right predicate.Predicate) predicate.Predicate {
	return combine(left.(Criterion), right.(Criterion), "OR")
}

func combine(left, right Criterion, op string) Criterion {
	params := make([]any, 0, len(left.Params)+len(right.Params))
	params = append(params, left.Params...)
	params = append(params, right.Params...)
	return Criterion{
		SQL:    "(" + left.SQL + " " + op + " " + right.SQL + ")",
		Params: params,
	}
}

// Builder translates clauses into column criteria using a field-to-column
// mapping.
type Builder struct {
	columns map[string]string
}

// NewBuilder creates a Builder over a field-to-column mapping.
func NewBuilder(columns map[string]string) *Builder {
	return &Builder{columns: columns}
}

// BuildClause translates one field:value clause into "column = ?" with the
// value as parameter. A field outside the mapping is an *UnknownFieldError.
func (b *Builder) BuildClause(field, value string) (predicate.Predicate, error) {
	column, ok := b.columns[field]
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	return Criterion{SQL: column + " = ?", Params: []any{value}}, nil
}

// Compile compiles an expression straight to a SQL criterion using the given
// field-to-column mapping.
func Compile(expr *ast.Expression, columns map[string]string) (Criterion, error) {
	result, err := predicate.Compile(expr, Algebra{}, NewBuilder(columns).BuildClause)
	if err != nil {
		return Criterion{}, err
	}
	return result.(Criterion), nil
}
