// Copyright (c) 2026 The ratlp Authors

package ratmatrix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromRatStrings(t *testing.T) {
	x, err := NewFromRatStrings([]string{"0"}, 1, 2)
	assert.Error(t, err)
	assert.Nil(t, x)

	x, err = NewFromRatStrings([]string{}, 0, 1)
	assert.Error(t, err)
	assert.Nil(t, x)

	x, err = NewFromRatStrings([]string{"0", "0", "a"}, 3, 1)
	assert.Error(t, err)
	assert.Nil(t, x)

	x, err = NewFromRatStrings([]string{"1/2", "-3", "0.25", "7/3"}, 2, 2)
	assert.NoError(t, err)
	assert.NotNil(t, x)
	entry, err := x.Get(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(1, 2)))
	entry, err = x.Get(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(1, 4)))
	entry, err = x.Get(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(7, 3)))
}

func TestNewIdentity(t *testing.T) {
	identity, err := NewIdentity(3)
	assert.NoError(t, err)
	assert.NotNil(t, identity)
	assert.Equal(t, 3, identity.numRows)
	assert.Equal(t, 3, identity.numCols)
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	for i := 0; i < identity.numRows; i++ {
		for j := 0; j < identity.numCols; j++ {
			if i == j {
				assert.Equal(t, 0, identity.values[i*identity.numCols+j].Cmp(one))
			} else {
				assert.Equal(t, 0, identity.values[i*identity.numCols+j].Cmp(zero))
			}
		}
	}

	// Dimension 0 or less
	_, err = NewIdentity(0)
	assert.Error(t, err)
}

func TestRatMatrix_Mul(t *testing.T) {
	x, err := NewFromRatStrings([]string{"1/2", "1/3", "2", "1"}, 2, 2)
	assert.NoError(t, err)
	y, err := NewFromRatStrings([]string{"3", "0", "6", "1/2"}, 2, 2)
	assert.NoError(t, err)
	expected, err := NewFromRatStrings([]string{"7/2", "1/6", "12", "1/2"}, 2, 2)
	assert.NoError(t, err)
	product, err := NewEmpty(2, 2).Mul(x, y)
	assert.NoError(t, err)
	equals, err := product.Equals(expected)
	assert.NoError(t, err)
	assert.True(t, equals)

	// Mismatched dimensions
	z, err := NewFromRatStrings([]string{"1", "2", "3"}, 3, 1)
	assert.NoError(t, err)
	_, err = NewEmpty(2, 1).Mul(x, z)
	assert.Error(t, err)
}

func TestRatMatrix_Transpose(t *testing.T) {
	x, err := NewFromInt64Array([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.NoError(t, err)
	expected, err := NewFromInt64Array([]int64{1, 4, 2, 5, 3, 6}, 3, 2)
	assert.NoError(t, err)
	transpose, err := NewEmpty(3, 2).Transpose(x)
	assert.NoError(t, err)
	equals, err := transpose.Equals(expected)
	assert.NoError(t, err)
	assert.True(t, equals)
}

func TestRatMatrix_Copy(t *testing.T) {
	x, err := NewFromRatStrings([]string{"1/2", "2", "3", "4"}, 2, 2)
	assert.NoError(t, err)
	y := NewEmpty(2, 2).Copy(x)
	equals, err := y.Equals(x)
	assert.NoError(t, err)
	assert.True(t, equals)

	// Deep copy: mutating the copy must not touch the source
	entry, err := y.Get(0, 0)
	assert.NoError(t, err)
	entry.SetInt64(99)
	sourceEntry, err := x.Get(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, sourceEntry.Cmp(big.NewRat(1, 2)))
}

func TestRatMatrix_GetSet(t *testing.T) {
	x := NewEmpty(2, 2)
	err := x.Set(0, 1, big.NewRat(5, 7))
	assert.NoError(t, err)
	entry, err := x.Get(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.Cmp(big.NewRat(5, 7)))

	_, err = x.Get(2, 0)
	assert.Error(t, err)
	_, err = x.Get(0, -1)
	assert.Error(t, err)
	err = x.Set(-1, 0, big.NewRat(1, 1))
	assert.Error(t, err)
	err = x.Set(0, 2, big.NewRat(1, 1))
	assert.Error(t, err)
}

func TestDotProduct(t *testing.T) {
	x, err := NewFromInt64Array([]int64{1, 2, 3}, 1, 3)
	assert.NoError(t, err)
	y, err := NewFromInt64Array([]int64{4, 5, 6}, 3, 1)
	assert.NoError(t, err)
	dotProduct, err := DotProduct(x, y, 0, 0, 0, 3, false)
	assert.NoError(t, err)
	assert.Equal(t, 0, dotProduct.Cmp(big.NewRat(32, 1)))

	// Partial range {1, 2}
	dotProduct, err = DotProduct(x, y, 0, 0, 1, 3, false)
	assert.NoError(t, err)
	assert.Equal(t, 0, dotProduct.Cmp(big.NewRat(28, 1)))

	// Invalid range
	_, err = DotProduct(x, y, 0, 0, 2, 2, false)
	assert.Error(t, err)
	_, err = DotProduct(x, y, 0, 0, 0, 4, false)
	assert.Error(t, err)
}

func TestRatVectors(t *testing.T) {
	v := NewRatVector(3)
	assert.Len(t, v, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, v[i].Sign())
	}
	assert.Nil(t, NewRatVector(0))

	parsed, err := RatVectorFromStrings([]string{"3/28", "-1", "0.5"})
	assert.NoError(t, err)
	assert.Equal(t, 0, parsed[0].Cmp(big.NewRat(3, 28)))
	assert.Equal(t, 0, parsed[1].Cmp(big.NewRat(-1, 1)))
	assert.Equal(t, 0, parsed[2].Cmp(big.NewRat(1, 2)))

	_, err = RatVectorFromStrings([]string{"1", "x"})
	assert.Error(t, err)

	copied := CopyRatVector(parsed)
	assert.True(t, RatVectorsEqual(parsed, copied))
	copied[0].SetInt64(5)
	assert.False(t, RatVectorsEqual(parsed, copied))
	assert.Equal(t, 0, parsed[0].Cmp(big.NewRat(3, 28)))
	assert.False(t, RatVectorsEqual(parsed, parsed[:2]))
}
