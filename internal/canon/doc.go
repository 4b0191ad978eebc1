// Package canon renders expression ASTs to their canonical textual form and
// derives content-addressed identities from it.
//
// The canonical form is the minimal surface text: no whitespace around ':',
// single spaces around connectives, parentheses only where the tree carries
// an actual Grouping node. It is format-stable - reparsing canonical output
// and printing again reproduces the same string - which makes it safe to use
// both for display and as the stored representation of a filter.
package canon
