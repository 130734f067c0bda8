package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// currentPrefactor multiplies (A²)_jl·C_jl in the energy current from j to l.
const currentPrefactor = 1i / 8

// pathTolerance is the relative size below which an entry of A² is treated as
// cancelled and its pair carries no current.
const pathTolerance = 1e-12

// ThermalCurrentMatrix contracts a Majorana correlation matrix C_jl = ⟨c_j c_l⟩
// with the energy-current operator of s:
//
//	I_jl = (i/8)·(A²)_jl·C_jl  for j ≠ l,   I_jj = 0.
//
// A² couples sites that share a neighbour, so I_jl is the energy carried from
// j to l through their common bonds. With the antisymmetric imaginary
// off-diagonal of a physical C, I is real and antisymmetric.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func (s *System) ThermalCurrentMatrix(correl *mat.CDense) (*mat.CDense, error) {
	if err := matrix.ValidateSquare(correl); err != nil {
		return nil, fmt.Errorf("ThermalCurrentMatrix: %w", err)
	}
	n := s.geo.sites()
	if r, _ := correl.Dims(); r != n {
		return nil, fmt.Errorf("ThermalCurrentMatrix: %d×%d for %d sites: %w", r, r, n, matrix.ErrDimensionMismatch)
	}
	sq := s.squaredCouplings()
	out := mat.NewCDense(n, n, nil)
	var j, l int
	for j = 0; j < n; j++ {
		for l = 0; l < n; l++ {
			if j == l {
				continue
			}
			if w := sq.At(j, l); w != 0 {
				out.Set(j, l, currentPrefactor*complex(w, 0)*correl.At(j, l))
			}
		}
	}

	return out, nil
}

// TotalCurrentX returns ½ Σ_jl I_jl·Δx_jl, the net current along x.
func (s *System) TotalCurrentX(currents *mat.CDense) complex128 {
	s.ensureDisplacements()

	return s.project(currents, s.dx)
}

// TotalCurrentY returns ½ Σ_jl I_jl·Δy_jl, the net current along y.
func (s *System) TotalCurrentY(currents *mat.CDense) complex128 {
	s.ensureDisplacements()

	return s.project(currents, s.dy)
}

// project sums currents weighted by a displacement table. The ½ removes the
// double counting of each (j,l) pair.
func (s *System) project(currents *mat.CDense, disp []float64) complex128 {
	n := s.geo.sites()
	var total complex128
	var j, l int
	for j = 0; j < n; j++ {
		for l = 0; l < n; l++ {
			if d := disp[j*n+l]; d != 0 {
				total += currents.At(j, l) * complex(d, 0)
			}
		}
	}

	return total / 2
}

// squaredCouplings returns the cached A·A.
func (s *System) squaredCouplings() *mat.Dense {
	if s.squared == nil {
		a := s.Couplings()
		var sq mat.Dense
		sq.Mul(a, a)
		s.squared = &sq
	}

	return s.squared
}

// Displacement returns the effective displacement Δ_jl of the current from
// site j to site l. Δ_jl = −Δ_lj at every L, and Δ is zero where (A²)_jl
// vanishes or j = l.
func (s *System) Displacement(j, l int) (dx, dy float64) {
	s.ensureDisplacements()
	n := s.geo.sites()

	return s.dx[j*n+l], s.dy[j*n+l]
}

// ensureDisplacements fills the displacement tables once.
//
// Every two-hop path j→s→l of A² contributes its unwrapped span weighted by
// A_js·A_sl, and the sum is divided by (A²)_jl, so I_jl·Δ_jl equals the
// path-resolved current. Terms are never wrapped, so pairs that are half a
// torus apart keep the direction of the path that actually couples them.
func (s *System) ensureDisplacements() {
	if s.dx != nil {
		return
	}
	s.Couplings()
	n := s.geo.sites()
	sq := make([]float64, n*n)
	wx := make([]float64, n*n)
	wy := make([]float64, n*n)
	for j, first := range s.hops {
		for _, h1 := range first {
			for _, h2 := range s.hops[h1.to] {
				idx := j*n + h2.to
				w := h1.v * h2.v
				sq[idx] += w
				wx[idx] += w * (h1.dx + h2.dx)
				wy[idx] += w * (h1.dy + h2.dy)
			}
		}
	}

	var peak float64
	for _, v := range sq {
		peak = math.Max(peak, math.Abs(v))
	}
	cut := pathTolerance * peak
	var j, l int
	for j = 0; j < n; j++ {
		for l = 0; l < n; l++ {
			idx := j*n + l
			if j == l || math.Abs(sq[idx]) <= cut {
				wx[idx], wy[idx] = 0, 0
				continue
			}
			wx[idx] /= sq[idx]
			wy[idx] /= sq[idx]
		}
	}
	s.dx, s.dy = wx, wy
}
