// Copyright (c) 2026 The ratlp Authors

package ratmatrix

import (
	"fmt"
	"math/big"
)

// NewRatVector returns a dim-long vector of zero-valued rationals. A
// non-positive dim yields an empty vector.
func NewRatVector(dim int) []*big.Rat {
	if dim <= 0 {
		return nil
	}
	retVal := make([]*big.Rat, dim)
	for i := 0; i < dim; i++ {
		retVal[i] = new(big.Rat)
	}
	return retVal
}

// RatVectorFromStrings parses each entry of input as a rational. Each entry
// may be an integer, a fraction like "3/28" or a decimal like "1.5".
func RatVectorFromStrings(input []string) ([]*big.Rat, error) {
	retVal := make([]*big.Rat, len(input))
	for i, value := range input {
		r, ok := new(big.Rat).SetString(value)
		if !ok {
			return nil, fmt.Errorf("RatVectorFromStrings: could not parse %q as a rational", value)
		}
		retVal[i] = r
	}
	return retVal, nil
}

// CopyRatVector returns a deep copy of x.
func CopyRatVector(x []*big.Rat) []*big.Rat {
	retVal := make([]*big.Rat, len(x))
	for i := 0; i < len(x); i++ {
		retVal[i] = new(big.Rat).Set(x[i])
	}
	return retVal
}

// RatVectorsEqual returns whether x and y have the same length and exactly
// equal entries.
func RatVectorsEqual(x, y []*big.Rat) bool {
	if len(x) != len(y) {
		return false
	}
	for i := 0; i < len(x); i++ {
		if x[i].Cmp(y[i]) != 0 {
			return false
		}
	}
	return true
}
