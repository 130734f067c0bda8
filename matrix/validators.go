// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Hermiticity runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether a is a nil interface or a typed nil *mat.CDense.
func isNil(a mat.CMatrix) bool {
	if a == nil {
		return true
	}
	if d, ok := a.(*mat.CDense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if a == nil (including a typed nil *mat.CDense).
// Complexity: O(1).
func ValidateNotNil(a mat.CMatrix) error {
	if isNil(a) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that a is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(a mat.CMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if r, c := a.Dims(); r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal Dims.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.CMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) equals the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every entry of a and fails with ErrNaNInf on the first
// NaN or ±Inf component (real or imaginary). The error carries the position.
//
// Determinism: row-major scan, first offending entry wins.
// Complexity: O(r*c).
func ValidateFinite(a mat.CMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	r, c := a.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !isFinite(a.At(i, j)) {
				return fmt.Errorf("ValidateFinite(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteReal is ValidateFinite for a real vector.
func ValidateFiniteReal(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFiniteReal(%d): %w", i, ErrNaNInf)
		}
	}

	return nil
}

// IsHermitian reports whether a is square and |a[i,j] − conj(a[j,i])| ≤ eps
// for all i ≤ j (the diagonal must therefore be real within eps).
//
// Options: WithEpsilon.
// Complexity: O(n²).
func IsHermitian(a mat.CMatrix, opts ...Option) bool {
	if ValidateSquare(a) != nil {
		return false
	}
	o := gatherOptions(opts...)
	n, _ := a.Dims()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if cmplx.Abs(a.At(i, j)-cmplx.Conj(a.At(j, i))) > o.eps {
				return false
			}
		}
	}

	return true
}

// ValidateHermitian is the error-returning form of IsHermitian.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
func ValidateHermitian(a mat.CMatrix, opts ...Option) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	if !IsHermitian(a, opts...) {
		return validatorErrorf("ValidateHermitian", ErrNotHermitian)
	}

	return nil
}

// IsUnitary reports whether aᴴ·a equals the identity within eps (max-abs).
//
// Implementation:
//   - Stage 1: square check.
//   - Stage 2: form aᴴ·a with ConjTransMul.
//   - Stage 3: compare against Identity entrywise.
//
// Complexity: O(n³).
func IsUnitary(a mat.CMatrix, opts ...Option) bool {
	if ValidateSquare(a) != nil {
		return false
	}
	o := gatherOptions(opts...)
	n, _ := a.Dims()
	prod, err := ConjTransMul(a, a)
	if err != nil {
		return false
	}
	diff, err := MaxAbsDiff(prod, Identity(n))

	return err == nil && diff <= o.eps
}

// isFinite reports whether both components of z are finite.
func isFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
