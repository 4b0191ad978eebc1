package visit

import (
	"fmt"

	"github.com/genobase/filterexpr/internal/ast"
)

// Handler processes one node given its children's already-computed results
// (see ast.Walk for the results contract).
type Handler func(n ast.Node, results []any) (any, error)

// NoHandlerError reports a dispatch miss: no handler was registered for a
// node's kind, its category, or as a catch-all, in this table or any table
// in its base chain.
//
// This indicates a missing case in a visitor, not a data problem. Treat it
// as an assertion failure: fatal, not retried, not surfaced to end users.
type NoHandlerError struct {
	Kind ast.Kind
}

// Error implements the error interface.
func (e *NoHandlerError) Error() string {
	return fmt.Sprintf("no visitor handler for %s node", e.Kind)
}

// Table is a dispatch table for one visitor: a registry of handlers keyed by
// node kind or structural category, optionally chained to a base table
// consulted on lookup misses.
//
// Tables are built once (registration) and then only read (dispatch), so a
// finished table is safe for concurrent use.
type Table struct {
	byKind     map[ast.Kind]Handler
	byCategory map[ast.Category]Handler
	catchAll   Handler
	base       *Table
}

// New creates an empty standalone table.
func New() *Table {
	return &Table{
		byKind:     make(map[ast.Kind]Handler),
		byCategory: make(map[ast.Category]Handler),
	}
}

// Extend creates a table that falls back to base for every kind it does not
// register itself. Chains compose transitively: a miss walks every base in
// turn.
func Extend(base *Table) *Table {
	t := New()
	t.base = base
	return t
}

// On registers a handler for one concrete node kind, replacing any previous
// registration for that kind.
func (t *Table) On(k ast.Kind, h Handler) *Table {
	t.byKind[k] = h
	return t
}

// OnCategory registers a handler for every kind in a structural category.
// Kind-specific registrations take precedence.
func (t *Table) OnCategory(c ast.Category, h Handler) *Table {
	t.byCategory[c] = h
	return t
}

// OnAny registers the catch-all handler, consulted only when neither the
// kind nor its category has a handler.
func (t *Table) OnAny(h Handler) *Table {
	t.catchAll = h
	return t
}

// lookup resolves the handler for kind k, most specific first, chasing the
// base chain on a miss.
func (t *Table) lookup(k ast.Kind) (Handler, bool) {
	for tab := t; tab != nil; tab = tab.base {
		if h, ok := tab.byKind[k]; ok {
			return h, true
		}
		if h, ok := tab.byCategory[k.Category()]; ok {
			return h, true
		}
		if tab.catchAll != nil {
			return tab.catchAll, true
		}
	}
	return nil, false
}

// Dispatch invokes the handler resolved for n's kind. It satisfies ast.Func
// so a table can be passed directly to ast.Walk.
func (t *Table) Dispatch(n ast.Node, results []any) (any, error) {
	h, ok := t.lookup(n.Kind())
	if !ok {
		return nil, &NoHandlerError{Kind: n.Kind()}
	}
	return h(n, results)
}

// Walk traverses n in post-order, dispatching every node through the table,
// and returns the root's result.
func (t *Table) Walk(n ast.Node) (any, error) {
	return ast.Walk(n, t.Dispatch)
}
