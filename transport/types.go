package transport

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kitaev-response/matrix"
)

// Stage names announced to the Observer.
const (
	StageOverlaps  = "overlaps"
	StageDensity   = "density"
	StageEvolution = "evolution"
)

// Current direction labels. The second direction is computed along y but is
// written under "z" in output documents.
const (
	DirectionX = "x"
	DirectionZ = "z"
)

// SpectralModel exposes the eigendecomposition of a single-particle
// Hamiltonian.
type SpectralModel interface {
	Eigen() (*matrix.EigenDecomposition, error)
}

// CurrentOperator turns a Majorana correlation matrix into an energy current
// matrix and projects it on the two lattice directions.
type CurrentOperator interface {
	ThermalCurrentMatrix(correl *mat.CDense) (*mat.CDense, error)
	TotalCurrentX(currents *mat.CDense) complex128
	TotalCurrentY(currents *mat.CDense) complex128
}

// LatticeModel is everything the pipeline reads from a lattice configuration.
// *lattice.System implements it.
type LatticeModel interface {
	SpectralModel
	CurrentOperator

	// LogOccupations returns the log thermal weights of the positive-energy
	// (upper) and negative-energy (lower) branches, each of length n/2.
	LogOccupations(beta float64) (upper, lower []float64, err error)
	Energy(beta float64) (float64, error)
	VortexProfile() []int
	VortexCount() int
	Spec() map[string]any
}

// StructuredWriter emits an ordered document incrementally.
// *jsonstream.Writer implements it.
type StructuredWriter interface {
	ObjectStart()
	ObjectEnd()
	ArrayStart()
	ArrayEnd()
	Key(key string)
	Value(v any)
	Pair(key string, v any)
	Flush() error
}

// Observer receives progress and diagnostics. It never influences results.
type Observer interface {
	StageStarted(stage string)
	StepCompleted(t float64, took time.Duration)
	ResidueExceeded(t float64, direction string, residue float64)
}

// Sample is the result of one time step. X and Z are the real parts of the
// net currents; the residues are their imaginary parts.
type Sample struct {
	T        float64
	X        float64
	Z        float64
	ResidueX float64
	ResidueZ float64
}
