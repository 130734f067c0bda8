package lattice

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// Version identifies the lattice model implementation in output documents.
const Version = "1.0.0"

// disorder labels used in Spec.
const (
	disorderNone       = "none"
	disorderRandomSign = "random_sign"
)

// System is one configuration of the Kitaev honeycomb: size, couplings, bond
// signs and local energy scales. Derived data (A, A², eigendecomposition,
// displacements) is computed lazily and cached; any mutation of the
// configuration drops the caches.
type System struct {
	geo  geometry
	j, k float64

	signs []float64 // u = ±1 per bond
	dpsi  float64   // gradient strength, 0 for a reference system

	gradient   bool
	disordered bool
	seed       uint64

	couplings *mat.Dense
	hops      [][]hop // per site, every term of A leaving it
	squared   *mat.Dense
	eigen     *matrix.EigenDecomposition
	dx, dy    []float64 // row-major n×n path displacements
}

// hop is one term of A seen from its first site: A[from][to] gains v, and the
// term spans (dx, dy) in the plane without wrapping.
type hop struct {
	to     int
	v      float64
	dx, dy float64
}

// New builds a vortex-free reference system (all bond signs +1).
//
// Errors: ErrInvalidSize for l < 1, ErrInvalidCoupling for non-finite J or K.
func New(l int, j, k float64) (*System, error) {
	if l < 1 {
		return nil, fmt.Errorf("New: L=%d: %w", l, ErrInvalidSize)
	}
	if !finite(j) || !finite(k) {
		return nil, fmt.Errorf("New: J=%g K=%g: %w", j, k, ErrInvalidCoupling)
	}
	geo := geometry{l: l}
	signs := make([]float64, geo.bondCount())
	for b := range signs {
		signs[b] = 1
	}

	return &System{geo: geo, j: j, k: k, signs: signs}, nil
}

// NewGradient builds the gradient-bearing system matched to ref: same size,
// couplings and bond signs (hence the same vortex sector), with the local
// energy scale 1 + dpsi·x along the first lattice direction.
func NewGradient(ref *System, dpsi float64) (*System, error) {
	if ref == nil {
		return nil, fmt.Errorf("NewGradient: %w", ErrNilSystem)
	}
	if !finite(dpsi) {
		return nil, fmt.Errorf("NewGradient: dpsi=%g: %w", dpsi, ErrInvalidCoupling)
	}
	signs := make([]float64, len(ref.signs))
	copy(signs, ref.signs)

	return &System{
		geo:        ref.geo,
		j:          ref.j,
		k:          ref.k,
		signs:      signs,
		dpsi:       dpsi,
		gradient:   true,
		disordered: ref.disordered,
		seed:       ref.seed,
	}, nil
}

// SetSignDisorderRandom draws every bond sign uniformly from {+1, −1} with a
// PCG generator seeded by seed, which places the system in a random vortex
// sector. The same seed always yields the same configuration.
func (s *System) SetSignDisorderRandom(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	for b := range s.signs {
		if rng.IntN(2) == 0 {
			s.signs[b] = -1
		} else {
			s.signs[b] = 1
		}
	}
	s.disordered = true
	s.seed = seed
	s.invalidate()
}

// Size returns L.
func (s *System) Size() int { return s.geo.l }

// Sites returns the number of Majorana sites, 2L².
func (s *System) Sites() int { return s.geo.sites() }

// IsGradient reports whether s was built by NewGradient.
func (s *System) IsGradient() bool { return s.gradient }

// Couplings returns the real antisymmetric matrix A of H = (i/4) Σ A_jk c_j c_k.
//
// Implementation:
//   - Stage 1: nearest neighbours, A[a][b] += 2J·u·w for every bond (a∈A, b∈B).
//   - Stage 2: three-spin term, for every site s and each cyclic bond pair
//     (p,q) of s, A[n_p][n_q] += −2K·u_p·u_q·w_s.
//
// The returned matrix is shared; callers must not modify it.
func (s *System) Couplings() *mat.Dense {
	if s.couplings != nil {
		return s.couplings
	}
	n := s.geo.sites()
	a := mat.NewDense(n, n, nil)
	hops := make([][]hop, n)
	add := func(p, q int, v, dx, dy float64) {
		if p == q {
			// wraps onto itself on an L=1 torus; c_p·c_p is a constant
			return
		}
		a.Set(p, q, a.At(p, q)+v)
		a.Set(q, p, a.At(q, p)-v)
		hops[p] = append(hops[p], hop{to: q, v: v, dx: dx, dy: dy})
		hops[q] = append(hops[q], hop{to: p, v: -v, dx: -dx, dy: -dy})
	}

	// Stage 1: nearest-neighbour bonds
	var cell int
	for cell = 0; cell < s.geo.cells(); cell++ {
		i, j := s.geo.coords(cell)
		siteA := s.geo.site(i, j, subA)
		for _, b := range []Bond{BondX, BondY, BondZ} {
			pi, pj := partnerOfA(i, j, b)
			bond := s.geo.bond(i, j, b)
			dx, dy := bondVector(subA, b)
			add(siteA, s.geo.site(pi, pj, subB), 2*s.j*s.signs[bond]*s.bondScale(i, b), dx, dy)
		}
	}

	// Stage 2: next-nearest neighbours through a shared site
	var site int
	for site = 0; site < n; site++ {
		nb := s.geo.neighbours(site)
		w := s.siteScale(site)
		for _, pair := range bondCycle {
			p, q := nb[pair[0]], nb[pair[1]]
			add(p.site, q.site, -2*s.k*s.signs[p.bond]*s.signs[q.bond]*w, q.dx-p.dx, q.dy-p.dy)
		}
	}
	s.couplings = a
	s.hops = hops

	return a
}

// Hamiltonian returns the Hermitian single-particle matrix iA.
func (s *System) Hamiltonian() *mat.CDense {
	a := s.Couplings()
	n, _ := a.Dims()
	h := mat.NewCDense(n, n, nil)
	var p, q int
	for p = 0; p < n; p++ {
		for q = 0; q < n; q++ {
			if v := a.At(p, q); v != 0 {
				h.Set(p, q, complex(0, v))
			}
		}
	}

	return h
}

// bondScale is the local energy scale at the midpoint of the bond of kind b
// leaving A(i,j). x bonds reach into the next column, so their midpoint sits
// half a cell further along the gradient.
func (s *System) bondScale(i int, b Bond) float64 {
	if !s.gradient {
		return 1
	}
	x := float64(i)
	if b == BondX {
		x += 0.5
	}

	return 1 + s.dpsi*x
}

// siteScale is the local energy scale at a site.
func (s *System) siteScale(site int) float64 {
	if !s.gradient {
		return 1
	}
	i, _ := s.geo.coords(site / 2)

	return 1 + s.dpsi*float64(i)
}

func (s *System) invalidate() {
	s.couplings = nil
	s.hops = nil
	s.squared = nil
	s.eigen = nil
	s.dx, s.dy = nil, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
