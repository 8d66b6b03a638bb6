package frame

import "errors"

// Sentinel errors returned by frame constructors.
var (
	// ErrInvalidDimensions is returned when a width, height, stride or
	// padding is negative or zero where a positive value is required.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")

	// ErrOutOfBounds is returned when a slice anchor or region rectangle
	// does not lie inside the plane allocation.
	ErrOutOfBounds = errors.New("frame: out of bounds")

	// ErrLengthMismatch is returned when a backing slice is too short for
	// the requested geometry.
	ErrLengthMismatch = errors.New("frame: slice length mismatch")
)
