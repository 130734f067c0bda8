package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// Eigen returns the eigendecomposition of iA: 2L² eigenvalues in ascending
// order, paired as Spectrum[m] = −Spectrum[2L²−1−m]. The result is cached and
// shared; callers must treat it as read-only.
func (s *System) Eigen() (*matrix.EigenDecomposition, error) {
	if s.eigen != nil {
		return s.eigen, nil
	}
	ed, err := matrix.EigenHermitian(s.Hamiltonian())
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}
	s.eigen = ed

	return ed, nil
}

// LogOccupations returns the thermal log-weights of both branches at inverse
// temperature beta. For m in [0, L²), with ε_m = Spectrum[2L²−1−m] ≥ 0:
//
//	upper[m] = log(1/(1+e^{−βε_m}))   (positive-energy branch)
//	lower[m] = log(1/(1+e^{+βε_m}))   (negative-energy branch)
//
// so exp(upper[m]) + exp(lower[m]) = 1. Both are evaluated in overflow-free
// form, which keeps them finite at very low temperature.
func (s *System) LogOccupations(beta float64) (upper, lower []float64, err error) {
	if !finite(beta) || beta <= 0 {
		return nil, nil, fmt.Errorf("LogOccupations: beta=%g: %w", beta, ErrInvalidTemperature)
	}
	ed, err := s.Eigen()
	if err != nil {
		return nil, nil, fmt.Errorf("LogOccupations: %w", err)
	}
	n := ed.Dim()
	half := n / 2
	upper = make([]float64, half)
	lower = make([]float64, half)
	for m := 0; m < half; m++ {
		x := beta * ed.Spectrum[n-1-m]
		upper[m] = -softplus(-x)
		lower[m] = -softplus(x)
	}

	return upper, lower, nil
}

// Energy returns the thermal energy −Σ_{ε>0} (ε/2)·tanh(βε/2).
func (s *System) Energy(beta float64) (float64, error) {
	if !finite(beta) || beta <= 0 {
		return 0, fmt.Errorf("Energy: beta=%g: %w", beta, ErrInvalidTemperature)
	}
	ed, err := s.Eigen()
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}
	n := ed.Dim()
	var e float64
	for m := 0; m < n/2; m++ {
		eps := ed.Spectrum[n-1-m]
		e -= eps / 2 * math.Tanh(beta*eps/2)
	}

	return e, nil
}

// softplus returns log(1+e^x) without overflow.
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}
