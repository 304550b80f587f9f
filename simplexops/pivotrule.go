// Copyright (c) 2026 The ratlp Authors

package simplexops

import "math/big"

// PivotRule selects the entering column from the priced reduced costs and
// breaks ties among candidate leaving rows. The rule for selecting pivots
// is the "strategy" a client can swap in order to trade the classic
// pricing behavior for robustness guarantees such as Bland's rule.
type PivotRule interface {
	// Entering returns the index of the entering column, or -1 when no
	// column can improve the objective. rc[j] is nil for columns that are
	// not eligible to enter (they are already basic); a rule must never
	// return the index of a nil entry.
	Entering(rc []*big.Rat) int

	// Leaving returns an index into rows selecting the leaving row.
	// rows[k] is a candidate row and ratios[k] its ratio-test value;
	// basic[r] is the column currently basic in row r. rows is never
	// empty and is ordered by increasing row index.
	Leaving(rows []int, ratios []*big.Rat, basic []int) int
}

// DantzigRule is the classic pricing rule: the entering column is the one
// with the most negative reduced cost and the leaving row is the one with
// the strictly smallest ratio. Both ties break on the first candidate in
// scan order. DantzigRule carries no anti-cycling guarantee; on degenerate
// inputs the solve could in principle cycle.
type DantzigRule struct{}

// Entering returns the first column achieving the minimum reduced cost,
// or -1 when the minimum is non-negative.
func (DantzigRule) Entering(rc []*big.Rat) int {
	retVal := -1
	var minRc *big.Rat
	for j := 0; j < len(rc); j++ {
		if rc[j] == nil {
			continue
		}
		if minRc == nil || rc[j].Cmp(minRc) < 0 {
			minRc = rc[j]
			retVal = j
		}
	}
	if minRc == nil || minRc.Sign() >= 0 {
		return -1
	}
	return retVal
}

// Leaving returns the first row achieving the minimum ratio.
func (DantzigRule) Leaving(rows []int, ratios []*big.Rat, basic []int) int {
	retVal := 0
	for k := 1; k < len(rows); k++ {
		if ratios[k].Cmp(ratios[retVal]) < 0 {
			retVal = k
		}
	}
	return retVal
}
