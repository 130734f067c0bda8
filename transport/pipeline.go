package transport

import (
	"fmt"
	"time"
)

// Document keys, in the order they are written.
const (
	KeyCodeVersions      = "code_versions"
	KeyReadme            = "readme"
	KeySpecification     = "specification"
	KeyRefVortexProfile  = "non_grad_vort_profile"
	KeyGradVortexProfile = "grad_vort_profile"
	KeyRefVortices       = "non_grad_vort"
	KeyGradVortices      = "grad_vort"
	KeyRefEnergy         = "non_grad_energy"
	KeyGradEnergy        = "grad_energy"
	KeyTimeSeries        = "time_series"
	KeyRunTime           = "run_time"
)

// Config describes one run of the pipeline.
type Config struct {
	Versions map[string]string // written under code_versions
	Readme   string
	Beta     float64   // inverse temperature of the reference state
	Times    []float64 // sample times, written in this order

	// Extra entries merged into the reference model's Spec under
	// specification (e.g. T, dpsi, tmax, dt, sample).
	Extra map[string]any

	// Now is the clock used for run_time and step timings (time.Now when nil).
	Now func() time.Time

	Options []Option
}

// Run prepares the reference thermal state, evolves it under pert and writes
// the complete document to w. Every time-series entry is flushed as soon as
// it is computed. w is left with the top-level object closed; finishing the
// underlying stream is up to the caller.
//
// Implementation:
//   - Stage 1 (overlaps): both eigendecompositions and the overlap matrix.
//   - Stage 2 (density): occupation vector and D = Oᴴ·Occ·O; energies.
//   - Stage 3: header keys.
//   - Stage 4 (evolution): one Evolver.Step per sample time, streamed.
//   - Stage 5: run_time.
//
// Errors: ErrNilInput, ErrNumerical, lattice errors, and writer errors as
// returned by w.Flush.
func Run(cfg Config, ref, pert LatticeModel, w StructuredWriter, obs Observer) error {
	if ref == nil || pert == nil || w == nil {
		return fmt.Errorf("Run: %w", ErrNilInput)
	}
	if obs == nil {
		obs = NopObserver{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	begin := now()

	// Stage 1: overlaps
	obs.StageStarted(StageOverlaps)
	refEd, err := ref.Eigen()
	if err != nil {
		return numericalf("Run: reference eigen", err)
	}
	pertEd, err := pert.Eigen()
	if err != nil {
		return numericalf("Run: perturbed eigen", err)
	}
	overlap, err := Overlap(refEd, pertEd)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	// Stage 2: density matrix in the perturbed basis
	obs.StageStarted(StageDensity)
	upper, lower, err := ref.LogOccupations(cfg.Beta)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	vec, err := OccupationVector(upper, lower)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	occ, err := OccupationMatrix(vec)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	density, err := DensityMatrix(overlap, occ)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	refEnergy, err := ref.Energy(cfg.Beta)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	gradEnergy, err := pert.Energy(cfg.Beta)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	opts := make([]Option, 0, len(cfg.Options)+1)
	opts = append(opts, cfg.Options...)
	opts = append(opts, WithObserver(obs))
	evolver, err := NewEvolver(density, pertEd, pert, opts...)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	// Stage 3: header
	w.ObjectStart()
	w.Pair(KeyCodeVersions, cfg.Versions)
	w.Pair(KeyReadme, cfg.Readme)
	w.Pair(KeySpecification, specification(ref, cfg.Extra))
	w.Pair(KeyRefVortexProfile, ref.VortexProfile())
	w.Pair(KeyGradVortexProfile, pert.VortexProfile())
	w.Pair(KeyRefVortices, ref.VortexCount())
	w.Pair(KeyGradVortices, pert.VortexCount())
	w.Pair(KeyRefEnergy, refEnergy)
	w.Pair(KeyGradEnergy, gradEnergy)
	if err = w.Flush(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	// Stage 4: time series
	obs.StageStarted(StageEvolution)
	w.Key(KeyTimeSeries)
	w.ArrayStart()
	for _, t := range cfg.Times {
		stepBegin := now()
		s, err := evolver.Step(t)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		w.ObjectStart()
		w.Pair(DirectionX, s.X)
		w.Pair(DirectionZ, s.Z)
		w.ObjectEnd()
		if err = w.Flush(); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		obs.StepCompleted(t, now().Sub(stepBegin))
	}
	w.ArrayEnd()

	// Stage 5: total wall time
	w.Pair(KeyRunTime, now().Sub(begin).Seconds())
	w.ObjectEnd()
	if err = w.Flush(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	return nil
}

// specification merges extra into a copy of the reference model's Spec.
func specification(ref LatticeModel, extra map[string]any) map[string]any {
	spec := make(map[string]any)
	for k, v := range ref.Spec() {
		spec[k] = v
	}
	for k, v := range extra {
		spec[k] = v
	}

	return spec
}
