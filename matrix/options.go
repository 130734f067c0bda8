// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by structural checks
	// (IsHermitian, IsUnitary) and by EigenHermitian's input validation.
	DefaultEpsilon = 1e-9

	// DefaultIndependenceTol is the squared-norm threshold under which a
	// candidate eigenvector is treated as linearly dependent on the vectors
	// already accepted by EigenHermitian.
	DefaultIndependenceTol = 1e-6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid      = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicIndependenceInvalid = "matrix: WithIndependenceTol: tol must be finite, in (0,1)"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	indepTol float64 // (0,1); DefaultIndependenceTol
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithIndependenceTol overrides DefaultIndependenceTol.
// Panics when tol is not a finite value in (0,1).
func WithIndependenceTol(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 || tol >= 1 {
		panic(panicIndependenceInvalid)
	}

	return func(o *Options) { o.indepTol = tol }
}

// gatherOptions resolves opts over the documented defaults.
// Nil options are skipped so callers may pass conditional setters.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		indepTol: DefaultIndependenceTol,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
