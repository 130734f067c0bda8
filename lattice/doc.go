// Package lattice models the Kitaev honeycomb in its Majorana representation
// on an L×L torus and exposes everything the transport pipeline needs from a
// lattice configuration.
//
// 🚀 What does a System provide?
//
//	• Geometry: 2L² Majorana sites (A/B sublattices), x/y/z bonds, hexagonal
//	  plaquettes, unwrapped bond vectors
//	• Couplings: the real antisymmetric matrix A of H = (i/4) Σ A_jk c_j c_k
//	  with J on bonds and the three-spin K term between next-nearest sites
//	• Disorder: random ±1 bond signs (a random vortex sector) from a seed
//	• Gradient: NewGradient(ref, dpsi) rescales the local energy scale by
//	  1 + dpsi·i along the first lattice direction, keeping ref's signs
//	• Spectrum: eigendecomposition of iA (ascending, ± paired)
//	• Thermal data: log-occupations of both branches, energy at β
//	• Currents: energy current matrix from a correlation matrix and its net
//	  projection on the x and y axes along the paths A² contracts over
//
// ⚙️ Usage:
//
//	ref, _ := lattice.New(4, 1.0, 0.1)
//	ref.SetSignDisorderRandom(seed)
//	grad, _ := lattice.NewGradient(ref, 0.01)
//	ed, _ := grad.Eigen()
//
// Site layout:
//
//	cell (i,j) has origin i·(1,0) + j·(½,√3/2); A sits at the origin, B at
//	(0, 1/√3). Site index is 2·(j·L+i) + sublattice. From A(i,j) the z bond
//	goes to B(i,j), the x bond to B(i+1,j−1), the y bond to B(i,j−1).
//
// Complexity:
//
//	Building A is O(L²); Eigen is O(L⁶) (dense 2L²×2L²); current matrices
//	are O(L⁴) per call once A² is cached.
package lattice
