package transport

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// Overlap expresses the reference eigenbasis in the perturbed one:
//
//	O[n,m] = Σᵢ conj(pert[i,m]) · ref[i,n]
//
// i.e. O = (pertᴴ·ref)ᵀ. For identical inputs O is the identity; in general
// it is unitary up to floating-point error (not enforced).
//
// Errors:
//   - ErrNilInput for a nil decomposition.
//   - matrix.ErrDimensionMismatch when the two bases differ in size.
//   - ErrNumerical (joined with matrix.ErrNaNInf) for non-finite entries.
//
// Complexity: O(n³).
func Overlap(ref, pert *matrix.EigenDecomposition) (*mat.CDense, error) {
	if ref == nil || pert == nil {
		return nil, fmt.Errorf("Overlap: %w", ErrNilInput)
	}
	if ref.Dim() != pert.Dim() {
		return nil, fmt.Errorf("Overlap: %d vs %d: %w", ref.Dim(), pert.Dim(), matrix.ErrDimensionMismatch)
	}
	if err := ref.Validate(); err != nil {
		return nil, numericalf("Overlap", err)
	}
	if err := pert.Validate(); err != nil {
		return nil, numericalf("Overlap", err)
	}

	p, err := matrix.ConjTransMul(pert.Vectors, ref.Vectors)
	if err != nil {
		return nil, fmt.Errorf("Overlap: %w", err)
	}
	o, err := matrix.Transpose(p)
	if err != nil {
		return nil, fmt.Errorf("Overlap: %w", err)
	}

	return o, nil
}
