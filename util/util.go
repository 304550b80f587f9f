// Copyright (c) 2026 The ratlp Authors

// Package util provides shared helpers: exact objective evaluation and
// bridges from exact rational data to gonum's float64 types for callers
// interoperating with floating-point tooling.
package util

import (
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/exactopt/ratlp/ratmatrix"
)

// Dot returns the exact dot product <x, y>. An error is returned when the
// lengths differ.
func Dot(x, y []*big.Rat) (*big.Rat, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("Dot: mismatched lengths %d and %d", len(x), len(y))
	}
	retVal := new(big.Rat)
	term := new(big.Rat)
	for i := 0; i < len(x); i++ {
		term.Mul(x[i], y[i])
		retVal.Add(retVal, term)
	}
	return retVal, nil
}

// Float64Vector converts x to float64 entries. The conversion rounds to
// nearest, so it is lossy for rationals whose denominators are not powers
// of two; it exists for interop with float64 tooling, never for use inside
// the solver.
func Float64Vector(x []*big.Rat) []float64 {
	retVal := make([]float64, len(x))
	for i := 0; i < len(x); i++ {
		retVal[i], _ = x[i].Float64()
	}
	return retVal
}

// Float64Dense converts x to a gonum dense matrix, rounding each entry to
// the nearest float64.
func Float64Dense(x *ratmatrix.RatMatrix) (*mat.Dense, error) {
	numRows, numCols := x.Dimensions()
	if numRows < 1 || numCols < 1 {
		return nil, fmt.Errorf("Float64Dense: matrix is empty")
	}
	data := make([]float64, numRows*numCols)
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			entry, err := x.Get(i, j)
			if err != nil {
				return nil, fmt.Errorf("Float64Dense: could not get x[%d][%d]: %q", i, j, err.Error())
			}
			data[i*numCols+j], _ = entry.Float64()
		}
	}
	return mat.NewDense(numRows, numCols, data), nil
}
