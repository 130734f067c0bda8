package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// ExampleEigenHermitian diagonalises the Pauli-Y operator.
//
// Scenario:
//
//	σʸ = | 0  -i |
//	     | i   0 |
//
// Expected:
//   - spectrum {-1, +1} in ascending order
//   - orthonormal eigenvector columns
func ExampleEigenHermitian() {
	h := mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})

	ed, err := matrix.EigenHermitian(h)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("spectrum=[%.3f %.3f]\n", ed.Spectrum[0], ed.Spectrum[1])
	fmt.Println("unitary:", matrix.IsUnitary(ed.Vectors))
	// Output:
	// spectrum=[-1.000 1.000]
	// unitary: true
}
