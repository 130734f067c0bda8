package params

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// PositionalCount is the number of positional invocation parameters.
const PositionalCount = 10

// OutputPrefix starts every output document name.
const OutputPrefix = "response-current_NV"

// Args holds the raw positional parameters, in invocation order. Numeric
// fields keep their literal spelling because the output filename and the
// document's specification echo them verbatim.
type Args struct {
	Version     string // code version of this program
	Readme      string // free text copied into the document
	L           string // system size (unit cells per side)
	Temperature string // temperature index on the LogScale grid
	TMax        string // max simulation time (exclusive)
	Dt          string // time step
	J           string // nearest-neighbour coupling
	K           string // three-spin coupling
	DPsi        string // perturbation-strength index on the LogScale grid
	Sample      string // sample identifier (seeds the disorder)
}

// Run is the resolved, validated form of Args.
type Run struct {
	L      int
	TIndex float64
	T      float64 // temperature, LogScale(TIndex)
	Beta   float64 // 1/T
	TMax   float64
	Dt     float64
	J, K   float64
	PIndex float64
	DPsi   float64 // gradient strength, LogScale(PIndex)
	Times  []float64
	Sample string
	Seed   uint64 // FNV-1a of Sample
}

// FromPositional maps exactly PositionalCount strings onto Args.
func FromPositional(raw []string) (Args, error) {
	if len(raw) != PositionalCount {
		return Args{}, fmt.Errorf("FromPositional: got %d values, want %d: %w", len(raw), PositionalCount, ErrParameter)
	}

	return Args{
		Version:     raw[0],
		Readme:      raw[1],
		L:           raw[2],
		Temperature: raw[3],
		TMax:        raw[4],
		Dt:          raw[5],
		J:           raw[6],
		K:           raw[7],
		DPsi:        raw[8],
		Sample:      raw[9],
	}, nil
}

// Resolve parses and validates every numeric parameter.
//
// Implementation:
//   - Stage 1: parse L (integer ≥ 1) and the finite reals.
//   - Stage 2: map the two indices through LogScale(idx, MinExp, MaxExp, Steps).
//   - Stage 3: build the sample-time grid and the disorder seed.
//
// Errors: ErrParameter wrapped with the parameter name.
func (a Args) Resolve() (Run, error) {
	var (
		r   Run
		err error
	)
	// Stage 1: parse
	if r.L, err = strconv.Atoi(a.L); err != nil || r.L < 1 {
		return Run{}, fmt.Errorf("L=%q must be an integer ≥ 1: %w", a.L, ErrParameter)
	}
	if r.TIndex, err = parseFinite("T", a.Temperature); err != nil {
		return Run{}, err
	}
	if r.TMax, err = parseFinite("tmax", a.TMax); err != nil {
		return Run{}, err
	}
	if r.Dt, err = parseFinite("dt", a.Dt); err != nil {
		return Run{}, err
	}
	if r.J, err = parseFinite("J", a.J); err != nil {
		return Run{}, err
	}
	if r.K, err = parseFinite("K", a.K); err != nil {
		return Run{}, err
	}
	if r.PIndex, err = parseFinite("dpsi", a.DPsi); err != nil {
		return Run{}, err
	}

	// Stage 2: log-scale indices
	if r.T, err = LogScale(r.TIndex, MinExp, MaxExp, Steps); err != nil {
		return Run{}, fmt.Errorf("T: %w", err)
	}
	r.Beta = 1 / r.T
	if r.DPsi, err = LogScale(r.PIndex, MinExp, MaxExp, Steps); err != nil {
		return Run{}, fmt.Errorf("dpsi: %w", err)
	}

	// Stage 3: time grid and seed
	if r.Times, err = Times(r.TMax, r.Dt); err != nil {
		return Run{}, err
	}
	r.Sample = a.Sample
	r.Seed = SeedFor(a.Sample)

	return r, nil
}

// OutputName builds the document name (without extension) from the literal
// parameter strings.
func (a Args) OutputName() string {
	return OutputPrefix +
		"_L" + a.L +
		"_T" + a.Temperature +
		"_tmax" + a.TMax +
		"_dt" + a.Dt +
		"_J" + a.J +
		"_K" + a.K +
		"_dpsi" + a.DPsi +
		"_sample" + a.Sample
}

// SeedFor derives the disorder seed of a sample identifier (FNV-1a, 64 bit).
func SeedFor(sample string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sample))

	return h.Sum64()
}

func parseFinite(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s=%q must be a finite number: %w", name, s, ErrParameter)
	}

	return v, nil
}
