// Package rewrite builds new expression trees from existing ones.
//
// Identity is the baseline visitor: it reconstructs a structurally identical
// tree, node by node. Every transforming visitor in the system extends the
// identity table and overrides just the kinds it cares about - UpdateValues
// overrides Clause alone and inherits everything else.
//
// Nothing here mutates its input; "rewriting" always means building a fresh
// tree that shares no state with the original.
package rewrite
