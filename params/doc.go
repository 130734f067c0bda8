// Package params resolves the positional invocation parameters of a response
// current run into physical quantities.
//
// What & Why:
//
//	A run is described by ten positional strings (version, readme, system
//	size, temperature index, max time, time step, couplings J and K,
//	perturbation-strength index, sample id). The two indices are log-scale
//	positions, not physical values; LogScale turns them into a temperature
//	and a gradient strength so the convention can be tested on its own.
//
// Usage:
//
//	args, err := params.FromPositional(os.Args[1:])
//	run, err := args.Resolve()
//	fmt.Println(run.T, run.DPsi, len(run.Times))
//	name := args.OutputName() + ".json"
//
// Errors:
//
//	Every malformed or out-of-range value fails with ErrParameter, wrapped
//	with the name of the offending parameter.
package params
