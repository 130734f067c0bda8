package lattice

import "errors"

var (
	// ErrInvalidSize indicates a non-positive system size.
	ErrInvalidSize = errors.New("lattice: system size must be >= 1")

	// ErrInvalidCoupling indicates a non-finite coupling or gradient strength.
	ErrInvalidCoupling = errors.New("lattice: couplings must be finite")

	// ErrInvalidTemperature indicates a non-positive or non-finite inverse temperature.
	ErrInvalidTemperature = errors.New("lattice: beta must be finite and > 0")

	// ErrNilSystem indicates that a nil reference system was supplied.
	ErrNilSystem = errors.New("lattice: nil system")
)
