package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// randomHermitian builds a deterministic n×n Hermitian matrix.
func randomHermitian(n int, seed uint64) *mat.CDense {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		h.Set(i, i, complex(rng.NormFloat64(), 0))
		for j := i + 1; j < n; j++ {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			h.Set(i, j, v)
			h.Set(j, i, complex(real(v), -imag(v)))
		}
	}

	return h
}

// TestEigenHermitian_PauliY checks the 2×2 Pauli-Y spectrum and eigenvectors.
func TestEigenHermitian_PauliY(t *testing.T) {
	h := mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})

	ed, err := matrix.EigenHermitian(h)
	require.NoError(t, err)
	require.Len(t, ed.Spectrum, 2)
	assert.InDelta(t, -1.0, ed.Spectrum[0], 1e-12)
	assert.InDelta(t, 1.0, ed.Spectrum[1], 1e-12)
	assert.True(t, matrix.IsUnitary(ed.Vectors), "eigenvectors must be orthonormal")

	back, err := ed.Reconstruct()
	require.NoError(t, err)
	diff, err := matrix.MaxAbsDiff(back, h)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-12)
}

// TestEigenHermitian_Random verifies residuals, ordering and orthonormality
// on a dense random Hermitian matrix.
func TestEigenHermitian_Random(t *testing.T) {
	const n = 12
	h := randomHermitian(n, 7)

	ed, err := matrix.EigenHermitian(h)
	require.NoError(t, err)
	require.NoError(t, ed.Validate())
	assert.Equal(t, n, ed.Dim())

	for k := 1; k < n; k++ {
		assert.LessOrEqual(t, ed.Spectrum[k-1], ed.Spectrum[k], "spectrum must be ascending")
	}
	assert.True(t, matrix.IsUnitary(ed.Vectors, matrix.WithEpsilon(1e-10)))

	back, err := ed.Reconstruct()
	require.NoError(t, err)
	diff, err := matrix.MaxAbsDiff(back, h)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-9)
}

// TestEigenHermitian_Degenerate exercises a fully degenerate spectrum, where
// the embedding hands back an arbitrary rotation of the eigenspace.
func TestEigenHermitian_Degenerate(t *testing.T) {
	const n = 6
	h := matrix.Identity(n)

	ed, err := matrix.EigenHermitian(h)
	require.NoError(t, err)
	for _, v := range ed.Spectrum {
		assert.InDelta(t, 1.0, v, 1e-12)
	}
	assert.True(t, matrix.IsUnitary(ed.Vectors))
}

// TestEigenHermitian_PurelyImaginary covers the iA form produced by real
// antisymmetric couplings: the spectrum comes in ±λ pairs.
func TestEigenHermitian_PurelyImaginary(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewPCG(3, 5))
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := rng.NormFloat64()
			h.Set(i, j, complex(0, a))
			h.Set(j, i, complex(0, -a))
		}
	}

	ed, err := matrix.EigenHermitian(h)
	require.NoError(t, err)
	for m := 0; m < n/2; m++ {
		assert.InDelta(t, -ed.Spectrum[m], ed.Spectrum[n-1-m], 1e-10, "±λ pairing at %d", m)
	}
	assert.True(t, matrix.IsUnitary(ed.Vectors, matrix.WithEpsilon(1e-10)))
}

// TestEigenHermitian_Errors checks the sentinel surface.
func TestEigenHermitian_Errors(t *testing.T) {
	_, err := matrix.EigenHermitian(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.EigenHermitian(mat.NewCDense(2, 3, nil))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	notH := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	_, err = matrix.EigenHermitian(notH)
	assert.ErrorIs(t, err, matrix.ErrNotHermitian)

	bad := mat.NewCDense(2, 2, []complex128{complex(math.NaN(), 0), 0, 0, 1})
	_, err = matrix.EigenHermitian(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestEigenDecomposition_Validate rejects inconsistent decompositions.
func TestEigenDecomposition_Validate(t *testing.T) {
	var nilED *matrix.EigenDecomposition
	assert.ErrorIs(t, nilED.Validate(), matrix.ErrNilMatrix)
	assert.Equal(t, 0, nilED.Dim())

	ed := &matrix.EigenDecomposition{Spectrum: []float64{1}, Vectors: matrix.Identity(2)}
	assert.ErrorIs(t, ed.Validate(), matrix.ErrDimensionMismatch)

	ed = &matrix.EigenDecomposition{Spectrum: []float64{1, math.Inf(1)}, Vectors: matrix.Identity(2)}
	assert.ErrorIs(t, ed.Validate(), matrix.ErrNaNInf)
}
