// Package parser converts filter expression text into an AST.
//
// GRAMMAR:
//
//	expression = term [ ("and" | "or") expression ]
//	term       = "(" expression ")"
//	           | "not" term
//	           | symbol ":" value
//	           | "*"
//	symbol     = letter { letter | digit | "." | "_" | "-" }
//	value      = one or more characters excluding whitespace and "(" / ")"
//
// Whitespace between tokens is insignificant and never survives to the AST.
// "and", "or" and "not" are reserved keywords and cannot be used as a clause
// field. Alternatives inside term are tried in the order written; the first
// match wins.
//
// GROUPING RULE:
//
// The language has no conventional operator precedence. Whichever connective
// keyword follows the first term becomes the outermost node, and its right
// operand is the entire recursively-parsed remainder:
//
//	a and b or c   =>   Conjunction(a, Disjunction(b, c))
//	a or b and c   =>   Disjunction(a, Conjunction(b, c))
//
// The leftmost keyword wins and swallows everything to its right. Explicit
// parentheses are the only way to force a different shape, and they are
// preserved as Grouping nodes. This rule is load-bearing: stored expressions
// depend on it, so it must not be "fixed" to precedence climbing.
//
// ERRORS:
//
// Parse either returns a complete, well-formed AST or a *SyntaxError with
// the byte offset of the failure. There is no partial result and no
// recovery; callers reject the input and re-prompt.
package parser
