package parray

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index. Errors
	// returned by sequence operations wrap it together with the offending
	// index and the current length.
	ErrIndexOutOfBounds = errors.New("parray: index out of bounds")
	// ErrInvalidConfig signals an invalid sequence configuration.
	ErrInvalidConfig = errors.New("parray: invalid configuration")
	// ErrIncompatibleConfig signals that two sequences cannot be combined,
	// e.g. because their ownership disciplines differ.
	ErrIncompatibleConfig = errors.New("parray: incompatible configuration")
)
