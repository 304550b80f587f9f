// Copyright (c) 2026 The ratlp Authors

// Package simplexops performs the two-phase primal revised simplex method
// in exact rational arithmetic
package simplexops

import (
	"fmt"
	"math/big"

	"github.com/exactopt/ratlp/ratmatrix"
)

// State holds the state of a running simplex solve. It is owned exclusively
// by one solve call: basis bookkeeping, the basis inverse, the basic costs
// and the solution vector are all mutated together every pivot, and nothing
// is shared across calls.
type State struct {
	c          []*big.Rat           // true costs, length numCols
	a          *ratmatrix.RatMatrix // numRows x numCols constraint matrix
	b          []*big.Rat           // right-hand side, every entry strictly positive
	numRows    int
	numCols    int
	basic      []int                // column basic in each row; artificials are numCols..numCols+numRows-1
	isBasic    []bool               // membership flags for the numCols real columns
	binv       *ratmatrix.RatMatrix // numRows x numRows inverse of the basis matrix
	cB         []*big.Rat           // objective cost of each basic column, per row
	x          []*big.Rat           // length numCols+numRows; artificial values at the tail
	phase      Phase
	iterations int
}

// NewState returns a State initialized with the all-artificial basis: the
// basis inverse is the identity, every basic cost is one (the phase-one
// objective is the sum of the artificials) and each artificial carries the
// corresponding right-hand-side value.
//
// An error is returned if the dimensions of c, a and b disagree or if any
// entry of b is not strictly positive. No partial work is performed on a
// rejected input.
func NewState(c []*big.Rat, a *ratmatrix.RatMatrix, b []*big.Rat) (*State, error) {
	numRows, numCols := a.Dimensions()
	if numRows != len(b) {
		return nil, fmt.Errorf(
			"NewState: matrix has %d rows but right-hand side has %d entries", numRows, len(b),
		)
	}
	if numCols != len(c) {
		return nil, fmt.Errorf(
			"NewState: matrix has %d columns but cost vector has %d entries", numCols, len(c),
		)
	}
	if numRows < 1 || numCols < 1 {
		return nil, fmt.Errorf("NewState: degenerate problem shape %d x %d", numRows, numCols)
	}
	for i := 0; i < numRows; i++ {
		if b[i].Sign() <= 0 {
			return nil, fmt.Errorf(
				"NewState: right-hand side entry %d = %s is not strictly positive",
				i, b[i].RatString(),
			)
		}
	}
	binv, err := ratmatrix.NewIdentity(numRows)
	if err != nil {
		return nil, fmt.Errorf("NewState: could not create the basis inverse: %q", err.Error())
	}
	retVal := &State{
		c:       ratmatrix.CopyRatVector(c),
		a:       new(ratmatrix.RatMatrix).Copy(a),
		b:       ratmatrix.CopyRatVector(b),
		numRows: numRows,
		numCols: numCols,
		basic:   make([]int, numRows),
		isBasic: make([]bool, numCols),
		binv:    binv,
		cB:      make([]*big.Rat, numRows),
		x:       ratmatrix.NewRatVector(numCols + numRows),
		phase:   PhaseOne,
	}
	for j := 0; j < numRows; j++ {
		retVal.basic[j] = numCols + j
		retVal.cB[j] = big.NewRat(1, 1)
		retVal.x[numCols+j].Set(b[j])
	}
	return retVal, nil
}

// Phase returns the phase the solve is currently in.
func (s *State) Phase() Phase {
	return s.phase
}

// Iterations returns the number of pivots performed so far.
func (s *State) Iterations() int {
	return s.iterations
}

// NumRows returns the number of constraint rows.
func (s *State) NumRows() int {
	return s.numRows
}

// NumCols returns the number of real (non-artificial) columns.
func (s *State) NumCols() int {
	return s.numCols
}

// Solution returns a deep copy of the current values of the real columns,
// artificial entries stripped. The values are meaningful only after a solve
// has reported Optimal.
func (s *State) Solution() []*big.Rat {
	return ratmatrix.CopyRatVector(s.x[:s.numCols])
}

// CheckInvariants verifies the properties every reachable State satisfies:
// the constraint system holds exactly when the artificial values are
// included, every solution entry is non-negative, every non-basic real
// column sits at zero, and the maintained inverse times the basis matrix is
// the identity.
func (s *State) CheckInvariants(context string) error {
	for j := 0; j < s.numCols+s.numRows; j++ {
		if s.x[j].Sign() < 0 {
			return fmt.Errorf(
				"CheckInvariants (%s): x[%d] = %s is negative", context, j, s.x[j].RatString(),
			)
		}
	}
	inBasis := make(map[int]bool, s.numRows)
	for i := 0; i < s.numRows; i++ {
		inBasis[s.basic[i]] = true
	}
	for j := 0; j < s.numCols; j++ {
		if !inBasis[j] && s.x[j].Sign() != 0 {
			return fmt.Errorf(
				"CheckInvariants (%s): non-basic x[%d] = %s is not zero",
				context, j, s.x[j].RatString(),
			)
		}
		if inBasis[j] != s.isBasic[j] {
			return fmt.Errorf(
				"CheckInvariants (%s): membership flag for column %d disagrees with the basis",
				context, j,
			)
		}
	}

	// A x + artificials == b, exactly
	term := new(big.Rat)
	for i := 0; i < s.numRows; i++ {
		lhs := new(big.Rat).Set(s.x[s.numCols+i])
		for j := 0; j < s.numCols; j++ {
			aIJ, err := s.a.Get(i, j)
			if err != nil {
				return fmt.Errorf(
					"CheckInvariants (%s): could not get A[%d][%d]: %q", context, i, j, err.Error(),
				)
			}
			term.Mul(aIJ, s.x[j])
			lhs.Add(lhs, term)
		}
		if lhs.Cmp(s.b[i]) != 0 {
			return fmt.Errorf(
				"CheckInvariants (%s): row %d: A x = %s != b = %s",
				context, i, lhs.RatString(), s.b[i].RatString(),
			)
		}
	}

	// Binv B == I, where column i of B is the column of A basic in row i, or
	// an identity column for an artificial.
	basisMatrix := ratmatrix.NewEmpty(s.numRows, s.numRows)
	for i := 0; i < s.numRows; i++ {
		for k := 0; k < s.numRows; k++ {
			var entry *big.Rat
			var err error
			if s.basic[i] < s.numCols {
				entry, err = s.a.Get(k, s.basic[i])
				if err != nil {
					return fmt.Errorf(
						"CheckInvariants (%s): could not get A[%d][%d]: %q",
						context, k, s.basic[i], err.Error(),
					)
				}
			} else if s.basic[i]-s.numCols == k {
				entry = big.NewRat(1, 1)
			} else {
				entry = new(big.Rat)
			}
			err = basisMatrix.Set(k, i, entry)
			if err != nil {
				return fmt.Errorf(
					"CheckInvariants (%s): could not set B[%d][%d]: %q", context, k, i, err.Error(),
				)
			}
		}
	}
	product, err := ratmatrix.NewEmpty(s.numRows, s.numRows).Mul(s.binv, basisMatrix)
	if err != nil {
		return fmt.Errorf(
			"CheckInvariants (%s): could not multiply Binv by B: %q", context, err.Error(),
		)
	}
	identity, err := ratmatrix.NewIdentity(s.numRows)
	if err != nil {
		return fmt.Errorf("CheckInvariants (%s): could not create identity: %q", context, err.Error())
	}
	isIdentity, err := product.Equals(identity)
	if err != nil {
		return fmt.Errorf(
			"CheckInvariants (%s): could not compare Binv B to identity: %q", context, err.Error(),
		)
	}
	if !isIdentity {
		return fmt.Errorf("CheckInvariants (%s): Binv B is not the identity:\n%v", context, product)
	}
	return nil
}
