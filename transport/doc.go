// Package transport computes the thermal response current of a quenched
// Majorana system: a thermal state prepared under a reference Hamiltonian is
// evolved under a gradient-bearing one, and the net energy currents are
// recorded at every sample time.
//
// 🚀 Pipeline
//
//	1. Overlap        O[n,m] = Σᵢ conj(G[i,m])·R[i,n]   (R, G eigenvector columns)
//	2. Occupations    diagonal of thermal weights of both branches
//	3. Density        D = Oᴴ·Occ·O
//	4. Evolution      D(t) = U·D·Uᴴ,  U = exp(−i·λ·t)  (λ: gradient spectrum)
//	5. Majorana basis C = V·D(t)·Vᴴ, real off-diagonal parts dropped, ×2
//	6. Currents       I = current operator applied to C, projected on x and y
//
// Steps 4–6 run once per sample time and read only immutable inputs
// (Evolver.Step is a pure function of t).
//
// ⚙️ Collaborators
//
//	The lattice model, the output writer and the progress side channel are
//	injected through LatticeModel, StructuredWriter and Observer, so the
//	pipeline can be driven by any model implementation and tested without
//	files or loggers.
//
// Errors:
//
//	Non-finite values and eigensolver failures are reported as ErrNumerical
//	(joined with the underlying matrix or lattice error); writer failures are
//	returned unchanged.
package transport
