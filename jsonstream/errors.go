package jsonstream

import "errors"

var (
	// ErrIO indicates that the destination writer failed.
	ErrIO = errors.New("jsonstream: write failed")

	// ErrEncode indicates a value that has no JSON representation.
	ErrEncode = errors.New("jsonstream: value cannot be encoded")

	// ErrState indicates a call that does not fit the current nesting, e.g. a
	// bare value inside an object or an unbalanced ObjectEnd.
	ErrState = errors.New("jsonstream: invalid writer state")
)
