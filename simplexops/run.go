// Copyright (c) 2026 The ratlp Authors

package simplexops

import (
	"fmt"
	"math/big"
)

// OneIteration performs one step of the two-phase revised simplex method:
// it prices the non-basic real columns against the current dual values,
// either pivots or handles the end of the current phase, and reports
// whether the solve has reached a terminal status.
//
// The returned bool is true when the returned Status is meaningful; a
// phase-one to phase-two transition counts as a step that does not
// terminate. rule chooses the entering column and breaks ties among
// leaving rows; DantzigRule is the default used by the Solve functions.
func (s *State) OneIteration(rule PivotRule) (Status, bool, error) {
	// Dual values pi = cB Binv
	pi := make([]*big.Rat, s.numRows)
	term := new(big.Rat)
	for j := 0; j < s.numRows; j++ {
		pi[j] = new(big.Rat)
		for i := 0; i < s.numRows; i++ {
			binvIJ, err := s.binv.Get(i, j)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get Binv[%d][%d]: %q", i, j, err.Error(),
				)
			}
			term.Mul(s.cB[i], binvIJ)
			pi[j].Add(pi[j], term)
		}
	}

	// Reduced costs of the real columns. Basic columns are masked with nil
	// so no rule can choose them; in phase one the true cost does not
	// participate.
	rc := make([]*big.Rat, s.numCols)
	for col := 0; col < s.numCols; col++ {
		if s.isBasic[col] {
			continue
		}
		rcCol := new(big.Rat)
		if s.phase == PhaseTwo {
			rcCol.Set(s.c[col])
		}
		for i := 0; i < s.numRows; i++ {
			aICol, err := s.a.Get(i, col)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get A[%d][%d]: %q", i, col, err.Error(),
				)
			}
			term.Mul(pi[i], aICol)
			rcCol.Sub(rcCol, term)
		}
		rc[col] = rcCol
	}

	entering := rule.Entering(rc)
	if entering < 0 {
		// No column can improve the current phase's objective.
		if s.phase == PhaseOne {
			for j := 0; j < s.numRows; j++ {
				if s.x[s.numCols+j].Sign() > 0 {
					// An artificial is stuck at a positive value, so no
					// feasible solution exists without it.
					return Infeasible, true, nil
				}
			}
			// A feasible all-real basis exists. Install the true costs and
			// restart pricing without changing the basis.
			for i := 0; i < s.numRows; i++ {
				if s.basic[i] < s.numCols {
					s.cB[i] = new(big.Rat).Set(s.c[s.basic[i]])
				} else {
					s.cB[i] = new(big.Rat)
				}
			}
			s.phase = PhaseTwo
			return 0, false, nil
		}
		return Optimal, true, nil
	}
	if entering >= s.numCols || rc[entering] == nil {
		return 0, false, fmt.Errorf(
			"OneIteration: pivot rule chose ineligible entering column %d", entering,
		)
	}

	// d = Binv A[:,entering]
	d := make([]*big.Rat, s.numRows)
	for i := 0; i < s.numRows; i++ {
		d[i] = new(big.Rat)
		for k := 0; k < s.numRows; k++ {
			binvIK, err := s.binv.Get(i, k)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get Binv[%d][%d]: %q", i, k, err.Error(),
				)
			}
			aKEntering, err := s.a.Get(k, entering)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get A[%d][%d]: %q", k, entering, err.Error(),
				)
			}
			term.Mul(binvIK, aKEntering)
			d[i].Add(d[i], term)
		}
	}

	// Ratio test over the rows whose basic value decreases as the
	// entering column grows.
	var rows []int
	var ratios []*big.Rat
	for i := 0; i < s.numRows; i++ {
		if d[i].Sign() > 0 {
			rows = append(rows, i)
			ratios = append(ratios, new(big.Rat).Quo(s.x[s.basic[i]], d[i]))
		}
	}
	if len(rows) == 0 {
		// The entering column can grow forever.
		return Unbounded, true, nil
	}
	leavingIndex := rule.Leaving(rows, ratios, s.basic)
	if leavingIndex < 0 || leavingIndex >= len(rows) {
		return 0, false, fmt.Errorf(
			"OneIteration: pivot rule chose leaving index %d outside {0,...,%d}",
			leavingIndex, len(rows)-1,
		)
	}
	leavingRow := rows[leavingIndex]
	minRatio := ratios[leavingIndex]

	// Update the solution vector: every basic value moves by its component
	// of d, then the entering column takes the minimum ratio.
	for i := 0; i < s.numRows; i++ {
		term.Mul(minRatio, d[i])
		s.x[s.basic[i]].Sub(s.x[s.basic[i]], term)
	}
	s.x[entering].Set(minRatio)

	// Gauss-Jordan update of Binv with the leaving row as pivot.
	pivot := d[leavingRow]
	factor := new(big.Rat)
	for i := 0; i < s.numRows; i++ {
		if i == leavingRow {
			continue
		}
		factor.Quo(d[i], pivot)
		for k := 0; k < s.numRows; k++ {
			binvIK, err := s.binv.Get(i, k)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get Binv[%d][%d]: %q", i, k, err.Error(),
				)
			}
			pivotRowK, err := s.binv.Get(leavingRow, k)
			if err != nil {
				return 0, false, fmt.Errorf(
					"OneIteration: could not get Binv[%d][%d]: %q", leavingRow, k, err.Error(),
				)
			}
			term.Mul(factor, pivotRowK)
			binvIK.Sub(binvIK, term)
		}
	}
	for k := 0; k < s.numRows; k++ {
		pivotRowK, err := s.binv.Get(leavingRow, k)
		if err != nil {
			return 0, false, fmt.Errorf(
				"OneIteration: could not get Binv[%d][%d]: %q", leavingRow, k, err.Error(),
			)
		}
		pivotRowK.Quo(pivotRowK, pivot)
	}

	// Basis bookkeeping
	if s.basic[leavingRow] < s.numCols {
		s.isBasic[s.basic[leavingRow]] = false
	}
	s.basic[leavingRow] = entering
	s.isBasic[entering] = true
	if s.phase == PhaseOne {
		s.cB[leavingRow] = new(big.Rat)
	} else {
		s.cB[leavingRow] = new(big.Rat).Set(s.c[entering])
	}
	s.iterations++
	return 0, false, nil
}

// Run iterates until a terminal status is reached and returns it. The
// solve is deterministic: a given input and rule always produce the same
// status and, for Optimal, the same solution.
func (s *State) Run(rule PivotRule) (Status, error) {
	for {
		status, done, err := s.OneIteration(rule)
		if err != nil {
			return 0, fmt.Errorf("Run: iteration %d failed: %q", s.iterations, err.Error())
		}
		if done {
			return status, nil
		}
	}
}
