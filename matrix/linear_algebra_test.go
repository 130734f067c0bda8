package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// TestMul_Small checks a·b, a·bᴴ and aᴴ·b against hand-computed values.
func TestMul_Small(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1, 1i, 0, 2})
	b := mat.NewCDense(2, 2, []complex128{1, 0, 1i, 1})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 1i, 2i, 2}, ab.RawCMatrix().Data)

	abH, err := matrix.MulConjTrans(a, b)
	require.NoError(t, err)
	// bᴴ = [[1, -i], [0, 1]]
	assert.Equal(t, []complex128{1, -1i + 1i, 0, 2}, abH.RawCMatrix().Data)

	aHb, err := matrix.ConjTransMul(a, b)
	require.NoError(t, err)
	// aᴴ = [[1, 0], [-i, 2]]
	assert.Equal(t, []complex128{1, 0, -1i + 2i, 2}, aHb.RawCMatrix().Data)
}

// TestMul_NonDenseOperand makes sure wrapped operands (e.g. a.H()) are
// materialised and give the same result as the Zgemm transpose flag.
func TestMul_NonDenseOperand(t *testing.T) {
	a := mat.NewCDense(2, 3, []complex128{1, 2i, 3, -1, 0, 1i})
	viaFlag, err := matrix.ConjTransMul(a, a)
	require.NoError(t, err)
	viaView, err := matrix.Mul(a.H(), a)
	require.NoError(t, err)

	diff, err := matrix.MaxAbsDiff(viaFlag, viaView)
	require.NoError(t, err)
	assert.Equal(t, 0.0, diff)
}

// TestMul_Errors verifies the dimension and nil sentinels.
func TestMul_Errors(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *mat.CDense
	_, err = matrix.MulConjTrans(a, typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestBuilders covers Identity, Diag, DiagReal, Scale, Trace and Diagonal.
func TestBuilders(t *testing.T) {
	id := matrix.Identity(3)
	tr, err := matrix.Trace(id)
	require.NoError(t, err)
	assert.Equal(t, complex(3, 0), tr)

	d, err := matrix.Diag([]complex128{1i, 2})
	require.NoError(t, err)
	diag, err := matrix.Diagonal(d)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1i, 2}, diag)
	assert.Equal(t, complex128(0), d.At(0, 1))

	_, err = matrix.Diag(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.DiagReal([]float64{})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	r, err := matrix.DiagReal([]float64{0.5, 0.25})
	require.NoError(t, err)
	s, err := matrix.Scale(2, r)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), s.At(0, 0))
	assert.Equal(t, complex(0.5, 0), r.At(0, 0), "Scale must not mutate its input")

	_, err = matrix.Trace(mat.NewCDense(1, 2, nil))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	tp, err := matrix.Transpose(mat.NewCDense(1, 2, []complex128{1i, 2}))
	require.NoError(t, err)
	rows, cols := tp.Dims()
	assert.Equal(t, [2]int{2, 1}, [2]int{rows, cols})
	assert.Equal(t, complex(0, 1), tp.At(0, 0), "no conjugation")
	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
