// Copyright (c) 2026 The ratlp Authors

// Package pivoting implements alternative pivot rules for the simplex
// solver. The default rule reproduces the classic pricing behavior exactly;
// the rules here are opt-in replacements a client can pass to
// simplexops.SolveStandardWithRule when robustness matters more than
// reproducing the default pivot sequence.
package pivoting

import "math/big"

// Bland is Bland's anti-cycling rule: the entering column is the
// lowest-index column with a negative reduced cost, and among leaving rows
// tied at the minimum ratio the one whose basic column index is smallest
// is chosen. With this rule the simplex method cannot cycle, at the price
// of typically more pivots than the default rule.
//
// Bland changes the pivot sequence, so solutions of degenerate problems
// with multiple optima may differ from those of the default rule; the
// optimal objective value does not.
type Bland struct{}

// Entering returns the lowest-index eligible column with a negative
// reduced cost, or -1 when there is none.
func (Bland) Entering(rc []*big.Rat) int {
	for j := 0; j < len(rc); j++ {
		if rc[j] == nil {
			continue
		}
		if rc[j].Sign() < 0 {
			return j
		}
	}
	return -1
}

// Leaving returns the candidate at the minimum ratio whose basic column
// index is smallest.
func (Bland) Leaving(rows []int, ratios []*big.Rat, basic []int) int {
	retVal := 0
	for k := 1; k < len(rows); k++ {
		cmp := ratios[k].Cmp(ratios[retVal])
		if cmp < 0 || (cmp == 0 && basic[rows[k]] < basic[rows[retVal]]) {
			retVal = k
		}
	}
	return retVal
}
