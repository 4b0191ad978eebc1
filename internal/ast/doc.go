// Package ast defines the abstract syntax tree for the sample filter
// expression language.
//
// The language is a small boolean algebra over field:value clauses, used to
// select genomic samples and groups:
//
//	sample:3 and (group:2 or sample:4) and not group:5
//
// NODE MODEL:
//
// The node set is closed - a tagged sum type sealed with the marker method
// pattern. Only types in this package implement Node, which enables
// exhaustive handling in visitors and backend compilers.
//
// Node kinds:
//   - Tautology: the universal-match literal "*"
//   - Clause: an atomic field:value predicate
//   - Grouping: an explicit parenthesization from the source text
//   - Negation: logical NOT of a term
//   - Term: the grammar slot holding one of {Grouping, Negation, Clause, Tautology}
//   - Conjunction: logical AND (left Term, right Expression)
//   - Disjunction: logical OR (left Term, right Expression)
//   - Expression: the grammar root, holding one of {Conjunction, Disjunction, Term}
//
// Every kind belongs to a structural category (Leaf, Unary, Binary). The
// category hierarchy is what visitor dispatch tables fall back to when no
// kind-specific handler is registered (see internal/visit).
//
// IMMUTABILITY:
//
// Nodes are immutable once constructed. There is no update-in-place;
// transformations (deep copy, value rewriting) always build a fresh tree.
// Because of this, independent parses and traversals share no mutable state
// and need no synchronization.
//
// TRAVERSAL:
//
// Walk performs the single post-order traversal every visitor relies on:
// children are evaluated first and their results handed to the node's
// handler. Visitors are therefore written purely as "what do I do with this
// node, given my children's already-computed results" and never manage
// recursion themselves.
package ast
