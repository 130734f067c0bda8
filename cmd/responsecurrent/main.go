// Command responsecurrent computes the thermal response current of a Kitaev
// honeycomb after a thermal-gradient quench and streams it to a JSON document
// named after its parameters.
//
// Usage:
//
//	responsecurrent [--dir DIR] [--verbose] VERSION README L T_INDEX TMAX DT J K DPSI_INDEX SAMPLE
//
// Exit status: 0 on success, 2 for invalid parameters, 3 for numerical
// failures, 4 for I/O failures, 1 otherwise.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/kitaev-response/jsonstream"
	"github.com/katalvlaran/kitaev-response/lattice"
	"github.com/katalvlaran/kitaev-response/params"
	"github.com/katalvlaran/kitaev-response/transport"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitParameter = 2
	exitNumerical = 3
	exitIO        = 4
)

// app carries the flags and collaborators of one invocation.
type app struct {
	dir     string
	verbose bool
	logger  *zap.Logger
	now     func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "responsecurrent VERSION README L T_INDEX TMAX DT J K DPSI_INDEX SAMPLE",
		Short: "Thermal response current of a quenched Kitaev honeycomb",
		Long: `responsecurrent prepares the thermal state of a vortex-disordered Kitaev
honeycomb, evolves it under the Hamiltonian of the same lattice with a
thermal gradient, and streams the net energy currents to
response-current_NV_L<L>_T<T>_tmax<TMAX>_dt<DT>_J<J>_K<K>_dpsi<DPSI>_sample<SAMPLE>.json.

T_INDEX and DPSI_INDEX are positions 1..10 on the grid 10^(-2 + 2/9·(idx-1)).`,
		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(args)
		},
	}
	cmd.Flags().StringVar(&a.dir, "dir", ".", "directory for the output document")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (per-step timings)")
	// flags precede the positionals, so negative couplings are not read as flags
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", params.ErrParameter, err)
	})

	return cmd
}

// positionalArgs requires exactly params.PositionalCount arguments and
// reports a wrong count as a parameter error.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(params.PositionalCount)(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", params.ErrParameter, err)
	}

	return nil
}

// run resolves the parameters, builds both lattice systems and streams the
// document.
func (a *app) run(raw []string) error {
	args, err := params.FromPositional(raw)
	if err != nil {
		return err
	}
	run, err := args.Resolve()
	if err != nil {
		return err
	}

	ref, err := lattice.New(run.L, run.J, run.K)
	if err != nil {
		return fmt.Errorf("%w: %w", params.ErrParameter, err)
	}
	ref.SetSignDisorderRandom(run.Seed)
	grad, err := lattice.NewGradient(ref, run.DPsi)
	if err != nil {
		return fmt.Errorf("%w: %w", params.ErrParameter, err)
	}

	path := filepath.Join(a.dir, args.OutputName()+".json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w: %w", jsonstream.ErrIO, err)
	}
	defer f.Close()

	a.logger.Info("run started",
		zap.String("output", path),
		zap.Int("L", run.L),
		zap.Float64("T", run.T),
		zap.Float64("dpsi", run.DPsi),
		zap.Uint64("seed", run.Seed),
		zap.Int("steps", len(run.Times)))

	cfg := transport.Config{
		Versions: map[string]string{
			"main":       args.Version,
			"lattice":    lattice.Version,
			"jsonstream": jsonstream.Version,
		},
		Readme: args.Readme,
		Beta:   run.Beta,
		Times:  run.Times,
		Extra: map[string]any{
			"T":      run.T,
			"dpsi":   run.DPsi,
			"tmax":   args.TMax,
			"dt":     args.Dt,
			"sample": args.Sample,
		},
		Now: a.now,
	}
	w := jsonstream.New(f)
	if err = transport.Run(cfg, ref, grad, w, transport.NewLogObserver(a.logger)); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close output: %w: %w", jsonstream.ErrIO, err)
	}
	a.logger.Info("run finished", zap.String("output", path))

	return nil
}

// exitCode maps an error onto the documented exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, params.ErrParameter):
		return exitParameter
	case errors.Is(err, transport.ErrNumerical):
		return exitNumerical
	case errors.Is(err, jsonstream.ErrIO):
		return exitIO
	default:
		return exitFailure
	}
}

func main() {
	cmd := newRootCmd(&app{now: time.Now})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
