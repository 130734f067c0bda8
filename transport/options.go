package transport

import "math"

const (
	// DefaultResidueTolerance is the largest |Im| of a net current that is
	// accepted silently. Larger residues are reported to the Observer; the
	// recorded value is the real part either way.
	DefaultResidueTolerance = 1e-8

	// CorrelationScale converts the projected density matrix to Majorana
	// correlations, ⟨c_i c_j⟩ = 2·P_ij.
	CorrelationScale = 2
)

const panicResidueInvalid = "transport: WithResidueTolerance: tol must be finite, non-negative"

// Option configures an Evolver.
type Option func(*Options)

// Options is the effective Evolver configuration.
type Options struct {
	residueTol float64
	observer   Observer
}

// WithResidueTolerance overrides DefaultResidueTolerance.
// Panics when tol is negative or not finite.
func WithResidueTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicResidueInvalid)
	}

	return func(o *Options) { o.residueTol = tol }
}

// WithObserver routes step timings and residue warnings to obs.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		residueTol: DefaultResidueTolerance,
		observer:   NopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
