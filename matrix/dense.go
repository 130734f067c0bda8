// SPDX-License-Identifier: MIT

// Package matrix - dense builders and reductions over gonum's CDense.
//
// Purpose:
//   - Build the diagonal and identity operators used throughout the pipeline.
//   - Offer copy-based helpers (Clone, Scale) so inputs stay immutable.
//   - Provide the reductions the tests and the pipeline rely on (Trace,
//     Diagonal, MaxAbsDiff).
//
// Complexity quicksheet:
//   - Identity/Diag/DiagReal: O(n²) zero-init; Clone/Scale/MaxAbsDiff: O(r*c);
//     Trace/Diagonal: O(n).

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Identity returns a fresh n×n identity matrix. n must be positive.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Diag returns the square matrix with d on its diagonal and zeros elsewhere.
// Returns ErrInvalidDimensions for an empty d.
func Diag(d []complex128) (*mat.CDense, error) {
	if len(d) == 0 {
		return nil, matrixErrorf(opDiag, ErrInvalidDimensions)
	}
	m := mat.NewCDense(len(d), len(d), nil)
	for i, v := range d {
		m.Set(i, i, v)
	}

	return m, nil
}

// DiagReal is Diag for a real diagonal.
func DiagReal(d []float64) (*mat.CDense, error) {
	if len(d) == 0 {
		return nil, matrixErrorf(opDiag, ErrInvalidDimensions)
	}
	m := mat.NewCDense(len(d), len(d), nil)
	for i, v := range d {
		m.Set(i, i, complex(v, 0))
	}

	return m, nil
}

// Clone returns a deep copy of a as a *mat.CDense.
// Complexity: O(r*c).
func Clone(a mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opClone, err)
	}

	return toDense(a, true), nil
}

// Scale returns alpha·a as a new matrix; a is untouched.
func Scale(alpha complex128, a mat.CMatrix) (*mat.CDense, error) {
	out, err := Clone(a)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	raw := out.RawCMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j := range row {
			row[j] *= alpha
		}
	}

	return out, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(a mat.CMatrix) ([]complex128, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n, _ := a.Dims()
	d := make([]complex128, n)
	for i := range d {
		d[i] = a.At(i, i)
	}

	return d, nil
}

// Trace returns Σ a[i,i] of a square matrix.
func Trace(a mat.CMatrix) (complex128, error) {
	d, err := Diagonal(a)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s complex128
	for _, v := range d {
		s += v
	}

	return s, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| over all entries.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b mat.CMatrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	r, c := a.Dims()
	var worst float64
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if d := cmplx.Abs(a.At(i, j) - b.At(i, j)); d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// Transpose returns aᵀ (no conjugation) as a new matrix.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(a mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}

	return out, nil
}

// toDense returns a as *mat.CDense. When a already is a *mat.CDense it is
// returned as is unless forceCopy is set; any other CMatrix (e.g. a.H()) is
// materialised entry by entry.
func toDense(a mat.CMatrix, forceCopy bool) *mat.CDense {
	if d, ok := a.(*mat.CDense); ok && !forceCopy {
		return d
	}
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}

	return out
}
