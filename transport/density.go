package transport

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// OccupationVector combines the log thermal weights of both branches into the
// diagonal of the occupation matrix, in ascending-spectrum order:
//
//	vec[m]       = exp(lower[m])    (negative-energy branch)
//	vec[n−1−m]   = exp(upper[m])    (positive-energy branch)
//
// for m ∈ [0, n/2), n = 2·len(upper).
//
// Errors:
//   - matrix.ErrDimensionMismatch when the branches differ in length or are empty.
//   - ErrNumerical (joined with matrix.ErrNaNInf) for non-finite weights.
func OccupationVector(upper, lower []float64) ([]float64, error) {
	half := len(upper)
	if half == 0 || len(lower) != half {
		return nil, fmt.Errorf("OccupationVector: branches %d and %d: %w", len(upper), len(lower), matrix.ErrDimensionMismatch)
	}
	n := 2 * half
	vec := make([]float64, n)
	for m := 0; m < half; m++ {
		vec[m] = math.Exp(lower[m])
		vec[n-1-m] = math.Exp(upper[m])
	}
	if err := matrix.ValidateFiniteReal(vec); err != nil {
		return nil, numericalf("OccupationVector", err)
	}

	return vec, nil
}

// OccupationMatrix returns diag(vec).
func OccupationMatrix(vec []float64) (*mat.CDense, error) {
	occ, err := matrix.DiagReal(vec)
	if err != nil {
		return nil, fmt.Errorf("OccupationMatrix: %w", err)
	}

	return occ, nil
}

// DensityMatrix re-expresses the occupation matrix of the reference state in
// the perturbed eigenbasis: D = Oᴴ·Occ·O. No symmetrization is applied.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNumerical.
// Complexity: O(n³).
func DensityMatrix(overlap, occ mat.CMatrix) (*mat.CDense, error) {
	left, err := matrix.ConjTransMul(overlap, occ)
	if err != nil {
		return nil, fmt.Errorf("DensityMatrix: %w", err)
	}
	d, err := matrix.Mul(left, overlap)
	if err != nil {
		return nil, fmt.Errorf("DensityMatrix: %w", err)
	}
	if err = matrix.ValidateFinite(d); err != nil {
		return nil, numericalf("DensityMatrix", err)
	}

	return d, nil
}
