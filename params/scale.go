package params

import (
	"fmt"
	"math"
)

// Log-scale convention shared by the temperature and perturbation indices:
// index 1 maps to 10^MinExp, index Steps maps to 10^MaxExp.
const (
	MinExp = -2.0
	MaxExp = 0.0
	Steps  = 10
)

// MaxSteps bounds the number of sample times of one run.
const MaxSteps = 1 << 20

// LogScale maps a 1-based index onto a logarithmic grid:
//
//	10^(minExp + (maxExp-minExp)/(steps-1) · (index-1))
//
// index may be fractional but must lie within [1, steps]; steps must be ≥ 2.
//
// Errors: ErrParameter for a non-finite index, an index outside the grid,
// or a degenerate grid.
func LogScale(index, minExp, maxExp float64, steps int) (float64, error) {
	if steps < 2 {
		return 0, fmt.Errorf("LogScale: steps=%d: %w", steps, ErrParameter)
	}
	if math.IsNaN(index) || index < 1 || index > float64(steps) {
		return 0, fmt.Errorf("LogScale: index=%g outside [1,%d]: %w", index, steps, ErrParameter)
	}
	exp := minExp + (maxExp-minExp)/float64(steps-1)*(index-1)

	return math.Pow(10, exp), nil
}

// Times returns the sample times 0, dt, 2dt, … strictly below tmax.
// The count is ceil(tmax/dt) and each entry is k·dt (no accumulation error).
//
// Errors: ErrParameter unless tmax and dt are finite and positive and
// ceil(tmax/dt) is at most MaxSteps.
func Times(tmax, dt float64) ([]float64, error) {
	if !isPositiveFinite(tmax) {
		return nil, fmt.Errorf("Times: tmax=%g: %w", tmax, ErrParameter)
	}
	if !isPositiveFinite(dt) {
		return nil, fmt.Errorf("Times: dt=%g: %w", dt, ErrParameter)
	}
	steps := math.Ceil(tmax / dt)
	if math.IsInf(steps, 0) || steps > MaxSteps {
		return nil, fmt.Errorf("Times: tmax/dt=%g exceeds %d steps: %w", tmax/dt, MaxSteps, ErrParameter)
	}
	n := int(steps)
	times := make([]float64, n)
	for k := range times {
		times[k] = float64(k) * dt
	}

	return times, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
