package params_test

import (
	"fmt"

	"github.com/katalvlaran/kitaev-response/params"
)

// ExampleArgs_Resolve resolves a small run.
//
// Scenario:
//
//	L=2, temperature index 10 (T=1), tmax=1, dt=0.25, dpsi index 1 (0.01)
func ExampleArgs_Resolve() {
	args, err := params.FromPositional([]string{"v1", "demo", "2", "10", "1", "0.25", "1", "0.1", "1", "s1"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	run, err := args.Resolve()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("T=%.2f dpsi=%.2f times=%v\n", run.T, run.DPsi, run.Times)
	fmt.Println(args.OutputName() + ".json")
	// Output:
	// T=1.00 dpsi=0.01 times=[0 0.25 0.5 0.75]
	// response-current_NV_L2_T10_tmax1_dt0.25_J1_K0.1_dpsi1_samples1.json
}
