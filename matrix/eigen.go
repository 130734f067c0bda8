// SPDX-License-Identifier: MIT

// Package matrix - Hermitian eigendecomposition.
//
// EigenHermitian diagonalises a complex Hermitian matrix H = X + iY through
// its real symmetric embedding
//
//	M = | X  -Y |
//	    | Y   X |
//
// Every eigenvalue λ of H appears twice in M, with real eigenvectors (u;v) and
// (-v;u) that both map to the complex eigenvector u+iv (up to a phase). The
// embedding is diagonalised with gonum's EigenSym, and the complex vectors are
// recovered in ascending eigenvalue order with a Gram–Schmidt pass that keeps
// exactly one orthonormal representative per complex dimension.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// EigenDecomposition is the spectrum of a Hermitian operator together with
// its eigenvectors.
//   - Spectrum is sorted ascending.
//   - Column k of Vectors is the unit eigenvector of Spectrum[k]; columns are
//     mutually orthonormal.
//
// Values are immutable once returned; consumers must not write into Vectors.
type EigenDecomposition struct {
	Spectrum []float64
	Vectors  *mat.CDense
}

// Dim returns the dimension of the decomposed space (0 for a nil receiver).
func (e *EigenDecomposition) Dim() int {
	if e == nil {
		return 0
	}

	return len(e.Spectrum)
}

// Validate checks structural consistency: non-nil vectors, a square n×n
// eigenvector matrix matching len(Spectrum), and finite entries everywhere.
func (e *EigenDecomposition) Validate() error {
	if e == nil || e.Vectors == nil {
		return validatorErrorf("EigenDecomposition.Validate", ErrNilMatrix)
	}
	if err := ValidateSquare(e.Vectors); err != nil {
		return validatorErrorf("EigenDecomposition.Validate", err)
	}
	n, _ := e.Vectors.Dims()
	if err := ValidateVecLen(e.Spectrum, n); err != nil {
		return validatorErrorf("EigenDecomposition.Validate", err)
	}
	if err := ValidateFiniteReal(e.Spectrum); err != nil {
		return validatorErrorf("EigenDecomposition.Validate", err)
	}
	if err := ValidateFinite(e.Vectors); err != nil {
		return validatorErrorf("EigenDecomposition.Validate", err)
	}

	return nil
}

// Reconstruct returns V·diag(λ)·Vᴴ, the operator the decomposition describes.
// Complexity: O(n³).
func (e *EigenDecomposition) Reconstruct() (*mat.CDense, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	d, err := DiagReal(e.Spectrum)
	if err != nil {
		return nil, err
	}
	vd, err := Mul(e.Vectors, d)
	if err != nil {
		return nil, err
	}

	return MulConjTrans(vd, e.Vectors)
}

// EigenHermitian computes the full eigendecomposition of a Hermitian matrix.
//
// Implementation:
//   - Stage 1: validate square, finite, Hermitian within eps.
//   - Stage 2: build the 2n×2n real symmetric embedding (Hermitian part only).
//   - Stage 3: factorize with mat.EigenSym (ascending eigenvalues).
//   - Stage 4: map each real eigenvector (u;v) to u+iv, orthogonalise against
//     the accepted vectors (two passes) and accept it if the remaining squared
//     norm exceeds the independence tolerance.
//   - Stage 5: require exactly n accepted vectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotHermitian (input).
//   - ErrEigenFailed (factorization failure or incomplete basis).
//
// Options: WithEpsilon, WithIndependenceTol.
//
// Complexity:
//   - Time O(n³) (constant ≈ 8× a real symmetric solve), Space O(n²).
func EigenHermitian(h mat.CMatrix, opts ...Option) (*EigenDecomposition, error) {
	o := gatherOptions(opts...)
	// Stage 1: Validate input
	if err := ValidateSquare(h); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(h); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateHermitian(h, WithEpsilon(o.eps)); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n, _ := h.Dims()

	// Stage 2: Real symmetric embedding
	embed := mat.NewSymDense(2*n, nil)
	var i, j int
	var x, y float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			// symmetrise so that the embedding is exactly symmetric
			x = (real(h.At(i, j)) + real(h.At(j, i))) / 2
			y = (imag(h.At(i, j)) - imag(h.At(j, i))) / 2
			embed.SetSym(i, j, x)
			embed.SetSym(n+i, n+j, x)
			embed.SetSym(i, n+j, -y)
			embed.SetSym(j, n+i, y)
		}
	}

	// Stage 3: Factorize
	var es mat.EigenSym
	if ok := es.Factorize(embed, true); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	values := es.Values(nil)
	var real2n mat.Dense
	es.VectorsTo(&real2n)

	// Stage 4: Recover one complex vector per complex dimension
	accepted := make([][]complex128, 0, n)
	spectrum := make([]float64, 0, n)
	z := make([]complex128, n)
	var k, pass int
	for k = 0; k < 2*n && len(accepted) < n; k++ {
		for i = 0; i < n; i++ {
			z[i] = complex(real2n.At(i, k), real2n.At(n+i, k))
		}
		for pass = 0; pass < 2; pass++ {
			for _, q := range accepted {
				projectOut(z, q)
			}
		}
		nrm := sqNorm(z)
		if nrm <= o.indepTol {
			continue // dependent on an already accepted vector
		}
		inv := complex(1/math.Sqrt(nrm), 0)
		v := make([]complex128, n)
		for i = range z {
			v[i] = z[i] * inv
		}
		accepted = append(accepted, v)
		spectrum = append(spectrum, values[k])
	}

	// Stage 5: Finalize
	if len(accepted) != n {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	vectors := mat.NewCDense(n, n, nil)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			vectors.Set(i, k, accepted[k][i])
		}
	}

	return &EigenDecomposition{Spectrum: spectrum, Vectors: vectors}, nil
}

// projectOut removes the component of z along the unit vector q in place.
func projectOut(z, q []complex128) {
	var coef complex128
	for i := range z {
		coef += cmplx.Conj(q[i]) * z[i]
	}
	for i := range z {
		z[i] -= coef * q[i]
	}
}

// sqNorm returns Σ|z_i|².
func sqNorm(z []complex128) float64 {
	var s float64
	for _, v := range z {
		s += real(v)*real(v) + imag(v)*imag(v)
	}

	return s
}
