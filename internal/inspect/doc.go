// Package inspect answers structural questions about expression trees.
//
// The testers here are syntactic, not semantic. IsTautology asks whether the
// tree is literally the "*" node behind pass-through wrappers - it does not
// prove logical equivalence to true, so "(*)" and "* or not *" both fail it.
// Likewise IsSingleton matches exactly one sample clause, nothing that
// merely evaluates like one.
//
// Each tester is a dispatch table with a catch-all returning false and
// overrides for the node kinds that can keep the answer alive.
package inspect
