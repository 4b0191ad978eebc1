package ast

import "fmt"

// Kind identifies a concrete node kind in the closed node set.
type Kind uint8

const (
	KindTautology Kind = iota
	KindClause
	KindGrouping
	KindNegation
	KindTerm
	KindConjunction
	KindDisjunction
	KindExpression
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindTautology:
		return "Tautology"
	case KindClause:
		return "Clause"
	case KindGrouping:
		return "Grouping"
	case KindNegation:
		return "Negation"
	case KindTerm:
		return "Term"
	case KindConjunction:
		return "Conjunction"
	case KindDisjunction:
		return "Disjunction"
	case KindExpression:
		return "Expression"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Category is the structural ancestor of a node kind. Dispatch tables that
// have no handler for a concrete kind fall back to its category.
type Category uint8

const (
	// CategoryLeaf covers Tautology and Clause: no children.
	CategoryLeaf Category = iota

	// CategoryUnary covers Grouping, Negation, Term and Expression:
	// exactly one child.
	CategoryUnary

	// CategoryBinary covers Conjunction and Disjunction: a left Term and a
	// right Expression.
	CategoryBinary
)

// String returns the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryLeaf:
		return "Leaf"
	case CategoryUnary:
		return "Unary"
	case CategoryBinary:
		return "Binary"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Category returns the structural category of a kind.
func (k Kind) Category() Category {
	switch k {
	case KindTautology, KindClause:
		return CategoryLeaf
	case KindConjunction, KindDisjunction:
		return CategoryBinary
	default:
		return CategoryUnary
	}
}

// Node is a node in the filter expression AST.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and keeps the
// node set closed, so visitors can treat an unhandled kind as a programming
// error rather than a data problem.
type Node interface {
	Kind() Kind
	node() // Marker method - seals interface to this package
}

// Tautology is the universal-match leaf, written "*" in source text.
type Tautology struct{}

func (*Tautology) Kind() Kind { return KindTautology }
func (*Tautology) node()      {}

// Clause is an atomic field:value predicate, e.g. "sample:3".
//
// Field is a syntactic symbol (letter followed by letters, digits, '.', '_',
// '-') and never one of the reserved keywords "and", "or", "not". Value is
// one or more characters excluding whitespace and parentheses. Both are
// guaranteed by the parser; code constructing clauses directly owns that
// guarantee itself.
type Clause struct {
	Field string
	Value string
}

func (*Clause) Kind() Kind { return KindClause }
func (*Clause) node()      {}

// Grouping is an explicit parenthesization from the source text.
//
// Its presence is preserved verbatim through every transformation: a
// Grouping node is never inferred from operator structure and never
// collapsed, so "(" and ")" in the input survive to the canonical output.
type Grouping struct {
	Child *Expression
}

func (*Grouping) Kind() Kind { return KindGrouping }
func (*Grouping) node()      {}

// Negation is logical NOT applied to a term.
type Negation struct {
	Child *Term
}

func (*Negation) Kind() Kind { return KindNegation }
func (*Negation) node()      {}

// Term is the grammar slot giving a grouping, negation, clause or tautology
// a uniform place on the left of a connective. Child is always one of
// *Grouping, *Negation, *Clause or *Tautology.
type Term struct {
	Child Node
}

func (*Term) Kind() Kind { return KindTerm }
func (*Term) node()      {}

// Conjunction is logical AND. The left operand is always a Term and the
// right operand is the entire recursively-parsed remainder of the enclosing
// expression - this right-leaning shape is what gives the language its
// leftmost-connective-wins grouping rule.
type Conjunction struct {
	Left  *Term
	Right *Expression
}

func (*Conjunction) Kind() Kind { return KindConjunction }
func (*Conjunction) node()      {}

// Disjunction is logical OR, shaped like Conjunction.
type Disjunction struct {
	Left  *Term
	Right *Expression
}

func (*Disjunction) Kind() Kind { return KindDisjunction }
func (*Disjunction) node()      {}

// Expression is the grammar root and the recursive "rest of expression"
// slot. Child is always one of *Conjunction, *Disjunction or *Term.
type Expression struct {
	Child Node
}

func (*Expression) Kind() Kind { return KindExpression }
func (*Expression) node()      {}
