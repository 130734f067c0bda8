// SPDX-License-Identifier: MIT
// Package matrix provides complex matrix products backed by BLAS Zgemm.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches; operands are never mutated.
//
// Purpose:
//   - Declare the canonical products used across the pipeline
//     (a·b, a·bᴴ, aᴴ·b) without materialising conjugate transposes.
//   - Define operation tags and shared constants for error reporting.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opMul          = "Mul"
	opMulConjTrans = "MulConjTrans"
	opConjTransMul = "ConjTransMul"
	opDiag         = "Diag"
	opDiagonal     = "Diagonal"
	opTrace        = "Trace"
	opClone        = "Clone"
	opScale        = "Scale"
	opMaxAbsDiff   = "MaxAbsDiff"
	opEigen        = "EigenHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns a·b.
//
// Errors:
//   - ErrNilMatrix          when a or b is nil.
//   - ErrDimensionMismatch  when a.Cols != b.Rows.
//
// Complexity: O(m·k·n).
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	out, err := gemm(blas.NoTrans, blas.NoTrans, a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// MulConjTrans returns a·bᴴ.
func MulConjTrans(a, b mat.CMatrix) (*mat.CDense, error) {
	out, err := gemm(blas.NoTrans, blas.ConjTrans, a, b)
	if err != nil {
		return nil, matrixErrorf(opMulConjTrans, err)
	}

	return out, nil
}

// ConjTransMul returns aᴴ·b.
func ConjTransMul(a, b mat.CMatrix) (*mat.CDense, error) {
	out, err := gemm(blas.ConjTrans, blas.NoTrans, a, b)
	if err != nil {
		return nil, matrixErrorf(opConjTransMul, err)
	}

	return out, nil
}

// gemm computes op(a)·op(b) into a freshly allocated result.
//
// Implementation:
//   - Stage 1: nil checks, resolve the effective shapes of op(a) and op(b).
//   - Stage 2: allocate the m×n result.
//   - Stage 3: delegate to cblas128.Gemm with alpha=1, beta=0.
//
// Notes:
//   - Operands that are not *mat.CDense are materialised once.
func gemm(ta, tb blas.Transpose, a, b mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	m, ka := effectiveDims(ta, a)
	kb, n := effectiveDims(tb, b)
	if ka != kb {
		return nil, ErrDimensionMismatch
	}

	ad := toDense(a, false)
	bd := toDense(b, false)
	out := mat.NewCDense(m, n, nil)
	cblas128.Gemm(ta, tb, 1, ad.RawCMatrix(), bd.RawCMatrix(), 0, out.RawCMatrix())

	return out, nil
}

// effectiveDims returns the shape of op(a).
func effectiveDims(t blas.Transpose, a mat.CMatrix) (rows, cols int) {
	r, c := a.Dims()
	if t == blas.NoTrans {
		return r, c
	}

	return c, r
}
