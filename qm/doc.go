// Package qm minimizes Boolean functions with the Quine-McCluskey method.
//
// A function of n variables is described by its minterms (the inputs for
// which it is true) and its maxterms (the inputs for which it is false). Any
// other input is a don't-care: the minimized expression may evaluate to
// anything there. Inputs are numbers in [0, 2^n); the first variable is the
// most significant bit.
//
// For example, the following truth table:
//
//	A B C | f
//	0 0 0 | 1
//	0 0 1 | 0
//	0 1 0 | X
//	0 1 1 | 0
//	1 0 0 | 0
//	1 0 1 | 1
//	1 1 0 | 0
//	1 1 1 | X
//
// is minimized with
//
//	solutions, err := qm.Minimize(qm.DefaultVariables[:3], []uint32{0, 5}, []uint32{1, 3, 4, 6}, qm.SOP)
//
// and yields the single solution "(A ∧ C) ∨ (~A ∧ ~C)".
//
// Minimization first finds all prime implicants of the function, then reduces
// the prime implicant chart by extracting essential prime implicants and by
// applying row and column dominance. The remaining covering problem is solved
// with Petrick's method. All the returned solutions are equally minimal: they
// have the same number of implicants and the same number of literals.
//
// The cost of the covering step is exponential in the worst case. A timeout or
// a cancellable context can be given to bound it.
package qm
