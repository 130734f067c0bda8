package params_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kitaev-response/params"
)

func scenarioArgs() []string {
	return []string{"v1.0", "readme text", "2", "1", "1.0", "0.5", "1.0", "1.0", "1", "1"}
}

// TestLogScale_Endpoints pins the index convention 10^(-2 + 2/9·(idx-1)).
func TestLogScale_Endpoints(t *testing.T) {
	first, err := params.LogScale(1, params.MinExp, params.MaxExp, params.Steps)
	require.NoError(t, err)
	assert.InDelta(t, 1e-2, first, 1e-15)

	last, err := params.LogScale(10, params.MinExp, params.MaxExp, params.Steps)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, last, 1e-12)

	for idx := 1.0; idx <= 10; idx++ {
		v, err := params.LogScale(idx, params.MinExp, params.MaxExp, params.Steps)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(10, -2+2.0/9*(idx-1)), v, 1e-12, "index %v", idx)
	}
}

// TestLogScale_Errors rejects out-of-grid indices and degenerate grids.
func TestLogScale_Errors(t *testing.T) {
	for _, idx := range []float64{0, 0.999, 10.5, math.NaN(), math.Inf(1)} {
		_, err := params.LogScale(idx, params.MinExp, params.MaxExp, params.Steps)
		assert.ErrorIs(t, err, params.ErrParameter, "index %v", idx)
	}
	_, err := params.LogScale(1, 0, 1, 1)
	assert.ErrorIs(t, err, params.ErrParameter)
}

// TestTimes checks the half-open grid, including a step that does not divide
// tmax exactly.
func TestTimes(t *testing.T) {
	ts, err := params.Times(1.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, ts)

	ts, err = params.Times(0.3, 0.1)
	require.NoError(t, err)
	assert.Len(t, ts, 3)

	ts, err = params.Times(1.0, 0.3)
	require.NoError(t, err)
	assert.Len(t, ts, 4)
	assert.InDelta(t, 0.9, ts[3], 1e-15)

	ts, err = params.Times(params.MaxSteps, 1)
	require.NoError(t, err)
	assert.Len(t, ts, params.MaxSteps)

	cases := [][2]float64{
		{0, 1}, {1, 0}, {-1, 0.1}, {math.Inf(1), 1}, {1, math.NaN()},
		{1e300, 1e-300},          // ratio overflows to +Inf
		{params.MaxSteps + 1, 1}, // finite but over the cap
	}
	for _, bad := range cases {
		_, err = params.Times(bad[0], bad[1])
		assert.ErrorIs(t, err, params.ErrParameter, "tmax=%v dt=%v", bad[0], bad[1])
	}
}

// TestResolve_Scenario resolves the reference scenario L=2, T index 1,
// dpsi index 1, tmax=1, dt=0.5.
func TestResolve_Scenario(t *testing.T) {
	args, err := params.FromPositional(scenarioArgs())
	require.NoError(t, err)

	run, err := args.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, run.L)
	assert.InDelta(t, 1e-2, run.T, 1e-15)
	assert.InDelta(t, 100, run.Beta, 1e-10)
	assert.InDelta(t, 1e-2, run.DPsi, 1e-15)
	assert.Equal(t, 1.0, run.J)
	assert.Equal(t, 1.0, run.K)
	assert.Equal(t, []float64{0, 0.5}, run.Times)
	assert.Equal(t, "1", run.Sample)
	assert.Equal(t, params.SeedFor("1"), run.Seed)
	assert.NotEqual(t, params.SeedFor("2"), run.Seed)
}

// TestResolve_Errors walks every parameter with a malformed value.
func TestResolve_Errors(t *testing.T) {
	cases := map[string]func(a *params.Args){
		"L not int":       func(a *params.Args) { a.L = "2.5" },
		"L zero":          func(a *params.Args) { a.L = "0" },
		"T not number":    func(a *params.Args) { a.Temperature = "hot" },
		"T out of grid":   func(a *params.Args) { a.Temperature = "11" },
		"tmax negative":   func(a *params.Args) { a.TMax = "-1" },
		"dt zero":         func(a *params.Args) { a.Dt = "0" },
		"J NaN":           func(a *params.Args) { a.J = "NaN" },
		"K Inf":           func(a *params.Args) { a.K = "+Inf" },
		"dpsi below grid": func(a *params.Args) { a.DPsi = "0.5" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			args, err := params.FromPositional(scenarioArgs())
			require.NoError(t, err)
			mutate(&args)
			_, err = args.Resolve()
			assert.ErrorIs(t, err, params.ErrParameter)
		})
	}
}

// TestFromPositional_Count rejects a wrong argument count.
func TestFromPositional_Count(t *testing.T) {
	_, err := params.FromPositional([]string{"v1"})
	assert.ErrorIs(t, err, params.ErrParameter)
}

// TestOutputName echoes the literal parameter strings in order.
func TestOutputName(t *testing.T) {
	args, err := params.FromPositional([]string{"v", "r", "4", "3", "10.", "0.1", "1", "0.2", "5", "7"})
	require.NoError(t, err)
	assert.Equal(t, "response-current_NV_L4_T3_tmax10._dt0.1_J1_K0.2_dpsi5_sample7", args.OutputName())
}
