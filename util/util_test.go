// Copyright (c) 2026 The ratlp Authors

package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exactopt/ratlp/ratmatrix"
)

func TestDot(t *testing.T) {
	x, err := ratmatrix.RatVectorFromStrings([]string{"1/2", "3"})
	assert.NoError(t, err)
	y, err := ratmatrix.RatVectorFromStrings([]string{"4", "1/3"})
	assert.NoError(t, err)
	dot, err := Dot(x, y)
	assert.NoError(t, err)
	assert.Equal(t, 0, dot.Cmp(big.NewRat(3, 1)))

	_, err = Dot(x, y[:1])
	assert.Error(t, err)

	empty, err := Dot(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Sign())
}

func TestFloat64Vector(t *testing.T) {
	x, err := ratmatrix.RatVectorFromStrings([]string{"1/2", "-3", "3/4"})
	assert.NoError(t, err)
	asFloat := Float64Vector(x)
	assert.Equal(t, []float64{0.5, -3, 0.75}, asFloat)
}

func TestFloat64Dense(t *testing.T) {
	x, err := ratmatrix.NewFromRatStrings([]string{"1/2", "2", "-1/4", "0"}, 2, 2)
	assert.NoError(t, err)
	dense, err := Float64Dense(x)
	assert.NoError(t, err)
	numRows, numCols := dense.Dims()
	assert.Equal(t, 2, numRows)
	assert.Equal(t, 2, numCols)
	assert.Equal(t, 0.5, dense.At(0, 0))
	assert.Equal(t, 2.0, dense.At(0, 1))
	assert.Equal(t, -0.25, dense.At(1, 0))
	assert.Equal(t, 0.0, dense.At(1, 1))

	_, err = Float64Dense(ratmatrix.NewEmpty(0, 0))
	assert.Error(t, err)
}
