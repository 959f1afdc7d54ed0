package kspace

import "errors"

// Sentinel errors for kspace package.
//
// Every failure in this package is a precondition violated by the caller
// while building a stencil. Errors are wrapped with context using
// fmt.Errorf and can be matched with errors.Is.
var (
	// ErrShapeMismatch is returned when cells of differing level shift or
	// space dimension are combined into one N-D cell or one set.
	ErrShapeMismatch = errors.New("kspace: shape mismatch")

	// ErrArityMismatch is returned when an index list does not have one
	// entry per axis.
	ErrArityMismatch = errors.New("kspace: arity mismatch")

	// ErrDirectionOutOfRange is returned by Direction and OrthoDirection
	// when fewer open (or closed) axes exist than requested.
	ErrDirectionOutOfRange = errors.New("kspace: direction out of range")

	// ErrIncompatibleTopology is returned when a mesh value is shifted by a
	// cell that was not derived from a reference of the same topology.
	ErrIncompatibleTopology = errors.New("kspace: incompatible topology")

	// ErrInvalidDimension is returned when a space dimension is outside
	// [1, MaxDimension].
	ErrInvalidDimension = errors.New("kspace: invalid dimension")

	// ErrInvalidTopology is returned when a topology has bits set beyond
	// the space dimension.
	ErrInvalidTopology = errors.New("kspace: invalid topology")
)
