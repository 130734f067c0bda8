// Package matrix_test provides benchmarks for the complex products and the
// Hermitian eigensolver, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// benchSizes are the matrix sizes to benchmark (2L² for L = 4, 6, 8).
var benchSizes = []int{32, 72, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *mat.CDense
	sinkE *matrix.EigenDecomposition
)

func BenchmarkConjTransMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomComplex(n, 1337)
			c := randomComplex(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ConjTransMul(a, c)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEigenHermitian(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h := randomHermitian(n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ed, err := matrix.EigenHermitian(h)
				if err != nil {
					b.Fatal(err)
				}
				sinkE = ed
			}
		})
	}
}

// randomComplex fills an n×n matrix with entries uniform in [-1,1)².
func randomComplex(n int, seed uint64) *mat.CDense {
	rng := rand.New(rand.NewPCG(seed, seed))
	m := mat.NewCDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.Set(i, j, complex(2*rng.Float64()-1, 2*rng.Float64()-1))
		}
	}

	return m
}
