package params

import "errors"

var (
	// ErrParameter indicates a malformed or out-of-range invocation parameter.
	ErrParameter = errors.New("params: invalid parameter")
)
