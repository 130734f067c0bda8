// Package matrix provides the complex dense linear algebra used by the
// transport pipeline: products, diagonal builders, validators and a
// Hermitian eigensolver, all on top of gonum's CDense storage.
//
// 🚀 What is in here?
//
//	• Products: Mul, MulConjTrans (a·bᴴ), ConjTransMul (aᴴ·b) backed by Zgemm
//	• Builders: Identity, Diag, DiagReal, Clone, Scale
//	• Reductions: Trace, Diagonal, MaxAbsDiff
//	• Validators: ValidateSquare, ValidateSameShape, ValidateFinite,
//	  IsHermitian, IsUnitary
//	• Spectral: EigenHermitian → EigenDecomposition (ascending spectrum,
//	  orthonormal eigenvector columns)
//
// ⚙️ Usage:
//
//	h := mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
//	ed, err := matrix.EigenHermitian(h)
//	if err != nil {
//	    // errors.Is(err, matrix.ErrNotHermitian) ...
//	}
//	fmt.Println(ed.Spectrum) // [-1 1]
//
// Numeric policy:
//
//	Every tolerance-driven check takes ...Option; the default epsilon is
//	DefaultEpsilon. Non-finite entries are reported with ErrNaNInf and never
//	silently propagated.
//
// Complexity:
//
//	Products and EigenHermitian are O(n³); validators are O(n²).
package matrix
