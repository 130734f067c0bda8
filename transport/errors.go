package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrNumerical indicates a NaN/Inf intermediate or a failed
	// diagonalisation. The underlying error is joined to it.
	ErrNumerical = errors.New("transport: numerical failure")

	// ErrNilInput indicates a missing model, writer or decomposition.
	ErrNilInput = errors.New("transport: nil input")
)

// numericalf wraps err as a numerical failure of op.
func numericalf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumerical, err)
}
