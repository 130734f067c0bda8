// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// TestOptions_Panics documents the programmer-error policy of option
// constructors: nonsensical values panic, boundary values are accepted.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { matrix.WithIndependenceTol(0) })
	assert.Panics(t, func() { matrix.WithIndependenceTol(1) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
	assert.NotPanics(t, func() { matrix.WithIndependenceTol(matrix.DefaultIndependenceTol) })
}

// TestOptions_NilSkipped checks that nil setters are ignored.
func TestOptions_NilSkipped(t *testing.T) {
	h := mat.NewCDense(2, 2, []complex128{1, 1i, -1i, 1})
	assert.True(t, matrix.IsHermitian(h, nil, matrix.WithEpsilon(matrix.DefaultEpsilon)))
}
