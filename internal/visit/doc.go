// Package visit implements the open dispatch mechanism visitors are built
// on.
//
// A Table maps AST node kinds to handler functions. Handlers can be
// registered for a concrete kind (Clause, Conjunction, ...), for a whole
// structural category (Leaf, Unary, Binary), or as a catch-all. Lookup for a
// node walks from most specific to least specific:
//
//	kind -> category -> catch-all -> base table (same walk)
//
// The base pointer is what makes visitors composable: a table built with
// Extend inherits every handler it does not override. The leaf-value
// rewriter, for instance, registers a Clause handler only and inherits the
// rest of the deep-copy behavior from the identity table.
//
// A lookup miss across the full chain is a NoHandlerError. That is a
// programming error - a node kind was added without updating a visitor - and
// is meant to be caught by tests, never handled at runtime.
package visit
