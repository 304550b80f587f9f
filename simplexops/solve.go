// Copyright (c) 2026 The ratlp Authors

package simplexops

import (
	"fmt"
	"math/big"

	"github.com/exactopt/ratlp/ratmatrix"
	"github.com/exactopt/ratlp/standardform"
)

// SolveStandard solves the standard-form linear program
//
//	minimize <c, x>  subject to  a x = b,  x >= 0
//
// with the default DantzigRule. Every entry of b must be strictly
// positive; a violation is returned as an error before any pivoting, not
// as a Status. The returned vector has one entry per column of a, with
// the artificial columns used internally stripped. For Infeasible and
// Unbounded the vector is a best-effort snapshot that callers must not
// interpret beyond the status.
func SolveStandard(
	c []*big.Rat, a *ratmatrix.RatMatrix, b []*big.Rat,
) (Status, []*big.Rat, error) {
	return SolveStandardWithRule(c, a, b, DantzigRule{})
}

// SolveStandardWithRule is SolveStandard with a caller-chosen pivot rule.
func SolveStandardWithRule(
	c []*big.Rat, a *ratmatrix.RatMatrix, b []*big.Rat, rule PivotRule,
) (Status, []*big.Rat, error) {
	state, err := NewState(c, a, b)
	if err != nil {
		return 0, nil, fmt.Errorf("SolveStandard: invalid input: %q", err.Error())
	}
	status, err := state.Run(rule)
	if err != nil {
		return 0, nil, fmt.Errorf("SolveStandard: solve failed: %q", err.Error())
	}
	return status, state.Solution(), nil
}

// SolveGeneral solves a general-form linear program with arbitrary
// constraint senses and objective direction. The problem is rewritten into
// standard form, solved, and the solution truncated to the original
// decision variables, so the returned vector always has len(c) entries.
func SolveGeneral(
	c []*big.Rat, obj standardform.Objective, a *ratmatrix.RatMatrix,
	b []*big.Rat, senses []standardform.Sense,
) (Status, []*big.Rat, error) {
	prob, err := standardform.Convert(c, obj, a, b, senses)
	if err != nil {
		return 0, nil, fmt.Errorf("SolveGeneral: could not convert to standard form: %q", err.Error())
	}
	status, x, err := SolveStandard(prob.C, prob.A, prob.B)
	if err != nil {
		return 0, nil, err
	}
	return status, x[:prob.NumDecision], nil
}
