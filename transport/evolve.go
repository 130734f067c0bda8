package transport

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// TimeEvolutionOperator returns the diagonal of U(t) = exp(−i·spectrum·t).
func TimeEvolutionOperator(spectrum []float64, t float64) []complex128 {
	u := make([]complex128, len(spectrum))
	for k, e := range spectrum {
		u[k] = cmplx.Exp(complex(0, -e*t))
	}

	return u
}

// Evolve returns U·D·Uᴴ for the diagonal operator u; d is not modified.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func Evolve(d *mat.CDense, u []complex128) (*mat.CDense, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	n, _ := d.Dims()
	if err := matrix.ValidateVecLen(u, n); err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	out := mat.NewCDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.Set(i, j, u[i]*d.At(i, j)*cmplx.Conj(u[j]))
		}
	}

	return out, nil
}

// RotateToMajorana returns V·D(t)·Vᴴ, the correlation matrix in the site basis.
//
// Complexity: O(n³).
func RotateToMajorana(vectors, dt mat.CMatrix) (*mat.CDense, error) {
	vd, err := matrix.Mul(vectors, dt)
	if err != nil {
		return nil, fmt.Errorf("RotateToMajorana: %w", err)
	}
	c, err := matrix.MulConjTrans(vd, vectors)
	if err != nil {
		return nil, fmt.Errorf("RotateToMajorana: %w", err)
	}

	return c, nil
}

// CorrectHermiticity drops the real part of every off-diagonal entry and
// keeps the diagonal unchanged. The result is a new matrix; applying the
// correction twice equals applying it once.
//
// For a Hermitian C the diagonal is real, so Im(C_kk) is rounding noise;
// adding i·Im(C_kk) on top of C_kk would only double it.
func CorrectHermiticity(c *mat.CDense) *mat.CDense {
	r, cols := c.Dims()
	out := mat.NewCDense(r, cols, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < cols; j++ {
			v := c.At(i, j)
			if i != j {
				v = complex(0, imag(v))
			}
			out.Set(i, j, v)
		}
	}

	return out
}

// Evolver advances the re-expressed density matrix under the perturbed
// spectrum and evaluates net currents. All inputs are read-only; Step may be
// called for any t in any order.
type Evolver struct {
	density  *mat.CDense
	spectrum []float64
	vectors  *mat.CDense
	currents CurrentOperator
	opts     Options
}

// NewEvolver binds the density matrix D (in the perturbed eigenbasis), the
// perturbed decomposition and its current operator.
//
// Errors: ErrNilInput, matrix.ErrDimensionMismatch, ErrNumerical.
func NewEvolver(density *mat.CDense, pert *matrix.EigenDecomposition, currents CurrentOperator, opts ...Option) (*Evolver, error) {
	if density == nil || pert == nil || currents == nil {
		return nil, fmt.Errorf("NewEvolver: %w", ErrNilInput)
	}
	if err := pert.Validate(); err != nil {
		return nil, numericalf("NewEvolver", err)
	}
	if r, c := density.Dims(); r != pert.Dim() || c != pert.Dim() {
		return nil, fmt.Errorf("NewEvolver: density %d×%d for %d modes: %w", r, c, pert.Dim(), matrix.ErrDimensionMismatch)
	}

	return &Evolver{
		density:  density,
		spectrum: pert.Spectrum,
		vectors:  pert.Vectors,
		currents: currents,
		opts:     gatherOptions(opts...),
	}, nil
}

// Correlation returns the corrected, scaled Majorana correlation matrix at t.
//
// Implementation:
//   - Stage 1: U(t) and D(t) = U·D·Uᴴ.
//   - Stage 2: C = V·D(t)·Vᴴ.
//   - Stage 3: Hermiticity correction, then ×CorrelationScale.
//
// Errors: ErrNumerical when any entry of C is NaN or ±Inf.
func (e *Evolver) Correlation(t float64) (*mat.CDense, error) {
	dt, err := Evolve(e.density, TimeEvolutionOperator(e.spectrum, t))
	if err != nil {
		return nil, fmt.Errorf("Correlation: %w", err)
	}
	c, err := RotateToMajorana(e.vectors, dt)
	if err != nil {
		return nil, fmt.Errorf("Correlation: %w", err)
	}
	c, err = matrix.Scale(CorrelationScale, CorrectHermiticity(c))
	if err != nil {
		return nil, fmt.Errorf("Correlation: %w", err)
	}
	if err = matrix.ValidateFinite(c); err != nil {
		return nil, numericalf(fmt.Sprintf("Correlation(t=%g)", t), err)
	}

	return c, nil
}

// Step computes the net currents at time t. Residues above the configured
// tolerance are reported to the observer and otherwise ignored.
//
// Errors: ErrNumerical for non-finite correlations, currents or totals.
func (e *Evolver) Step(t float64) (Sample, error) {
	c, err := e.Correlation(t)
	if err != nil {
		return Sample{}, fmt.Errorf("Step: %w", err)
	}
	cur, err := e.currents.ThermalCurrentMatrix(c)
	if err != nil {
		return Sample{}, fmt.Errorf("Step: %w", err)
	}
	if err = matrix.ValidateFinite(cur); err != nil {
		return Sample{}, numericalf(fmt.Sprintf("Step(t=%g)", t), err)
	}
	x := e.currents.TotalCurrentX(cur)
	z := e.currents.TotalCurrentY(cur)
	if cmplx.IsNaN(x) || cmplx.IsInf(x) || cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return Sample{}, numericalf(fmt.Sprintf("Step(t=%g)", t), matrix.ErrNaNInf)
	}

	s := Sample{T: t, X: real(x), Z: real(z), ResidueX: imag(x), ResidueZ: imag(z)}
	if math.Abs(s.ResidueX) > e.opts.residueTol {
		e.opts.observer.ResidueExceeded(t, DirectionX, s.ResidueX)
	}
	if math.Abs(s.ResidueZ) > e.opts.residueTol {
		e.opts.observer.ResidueExceeded(t, DirectionZ, s.ResidueZ)
	}

	return s, nil
}
