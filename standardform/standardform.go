// Copyright (c) 2026 The ratlp Authors

// Package standardform rewrites a general-form linear program into the
// standard computational form the simplex solver consumes: equality
// constraints, non-negative right-hand side, minimization objective.
package standardform

import (
	"fmt"
	"math/big"

	"github.com/exactopt/ratlp/ratmatrix"
)

// Objective is the optimization direction of a general-form problem.
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// String returns a string representation of the objective direction.
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "Min"
	case Maximize:
		return "Max"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Sense is the relation of one general-form constraint row.
type Sense int

const (
	LessEq Sense = iota
	Eq
	GreaterEq
)

// String returns a string representation of the constraint sense.
func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case Eq:
		return "="
	case GreaterEq:
		return ">="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Problem is a linear program in standard form: minimize <C, x> subject to
// A x = B, x >= 0. The first NumDecision columns of A are the original
// decision variables; the remaining columns are the slack and surplus
// variables added during conversion, one per non-equality row, assigned in
// row order.
type Problem struct {
	C           []*big.Rat
	A           *ratmatrix.RatMatrix
	B           []*big.Rat
	NumDecision int
}

// Convert rewrites the general-form problem
//
//	obj <c, x>  subject to  a[i] x (senses[i]) b[i],  x >= 0
//
// into standard form. A slack column (+1) is appended for each LessEq row
// and a surplus column (-1) for each GreaterEq row; a Maximize objective is
// negated so the solver always minimizes; each row with a negative
// right-hand side is negated entirely. Truncating a solution of the
// returned problem to its first NumDecision entries reproduces the
// general-form answer.
//
// Convert validates dimensions only. The positive-right-hand-side
// precondition is enforced by the solver, not here.
func Convert(
	c []*big.Rat, obj Objective, a *ratmatrix.RatMatrix, b []*big.Rat, senses []Sense,
) (*Problem, error) {
	numRows, numCols := a.Dimensions()
	if numRows != len(b) {
		return nil, fmt.Errorf(
			"Convert: matrix has %d rows but right-hand side has %d entries", numRows, len(b),
		)
	}
	if numRows != len(senses) {
		return nil, fmt.Errorf(
			"Convert: matrix has %d rows but %d constraint senses were given", numRows, len(senses),
		)
	}
	if numCols != len(c) {
		return nil, fmt.Errorf(
			"Convert: matrix has %d columns but cost vector has %d entries", numCols, len(c),
		)
	}

	numAux := 0
	for _, sense := range senses {
		if sense != Eq {
			numAux++
		}
	}

	// The cost vector is extended with zero-cost auxiliary entries and
	// negated when maximizing, since the solver always minimizes.
	newC := make([]*big.Rat, numCols+numAux)
	for j := 0; j < numCols; j++ {
		if obj == Maximize {
			newC[j] = new(big.Rat).Neg(c[j])
		} else {
			newC[j] = new(big.Rat).Set(c[j])
		}
	}
	for j := numCols; j < numCols+numAux; j++ {
		newC[j] = new(big.Rat)
	}

	newA := ratmatrix.NewEmpty(numRows, numCols+numAux)
	newB := ratmatrix.CopyRatVector(b)
	one := big.NewRat(1, 1)
	minusOne := big.NewRat(-1, 1)
	nextAux := numCols
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			entry, err := a.Get(i, j)
			if err != nil {
				return nil, fmt.Errorf("Convert: could not get a[%d][%d]: %q", i, j, err.Error())
			}
			err = newA.Set(i, j, entry)
			if err != nil {
				return nil, fmt.Errorf("Convert: could not set A[%d][%d]: %q", i, j, err.Error())
			}
		}
		switch senses[i] {
		case LessEq:
			err := newA.Set(i, nextAux, one)
			if err != nil {
				return nil, fmt.Errorf("Convert: could not place slack for row %d: %q", i, err.Error())
			}
			nextAux++
		case GreaterEq:
			err := newA.Set(i, nextAux, minusOne)
			if err != nil {
				return nil, fmt.Errorf("Convert: could not place surplus for row %d: %q", i, err.Error())
			}
			nextAux++
		case Eq:
		default:
			return nil, fmt.Errorf("Convert: row %d has unrecognized sense %v", i, senses[i])
		}
	}

	// Rows with a negative right-hand side are negated entirely, which
	// preserves the constraint and meets the solver's sign requirement.
	for i := 0; i < numRows; i++ {
		if newB[i].Sign() < 0 {
			newB[i].Neg(newB[i])
			for j := 0; j < numCols+numAux; j++ {
				entry, err := newA.Get(i, j)
				if err != nil {
					return nil, fmt.Errorf("Convert: could not get A[%d][%d]: %q", i, j, err.Error())
				}
				entry.Neg(entry)
			}
		}
	}

	return &Problem{C: newC, A: newA, B: newB, NumDecision: numCols}, nil
}
