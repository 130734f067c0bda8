// Package kitaevresponse computes the thermal response current of a Kitaev
// honeycomb quenched by a thermal gradient: a thermal state of the lattice
// without gradient is evolved under the Hamiltonian with gradient, and the
// net energy currents along two lattice directions are streamed to a JSON
// document at every sample time.
//
// 🚀 What is in here?
//
//	• matrix/     : complex dense linear algebra on gonum: Zgemm products,
//	                validators, Hermitian eigensolver
//	• params/     : positional parameters → temperature, gradient strength,
//	                sample times, output name
//	• lattice/    : the honeycomb model: couplings, sign disorder, gradient
//	                system, spectrum, thermal weights, vortices, currents
//	• jsonstream/ : incremental JSON writer over json-iterator
//	• transport/  : overlap, density matrix, time evolution, pipeline
//	• cmd/responsecurrent : the command line entry point
//
// ⚙️ Usage:
//
//	responsecurrent v1.0 "first scan" 4 5 20.0 0.1 1.0 0.1 3 17
//
// writes response-current_NV_L4_T5_tmax20.0_dt0.1_J1.0_K0.1_dpsi3_sample17.json
// into the current directory (or --dir).
//
// Quick ASCII picture of one hexagon (A ●, B ○):
//
//	    ○───●
//	   /     \
//	  ●       ○
//	   \     /
//	    ○───●
//
// Every hexagon carries a plaquette sign W_p = Π u over its six bonds; a
// random bond-sign configuration places vortices (W_p = −1) in pairs.
package kitaevresponse
