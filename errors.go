package convexhull

import "errors"

var (
	// ErrInvalidDimension is returned when the input has fewer than two
	// coordinates per vertex.
	ErrInvalidDimension = errors.New("convexhull: dimension of the input must be 2 or greater")

	// ErrDimensionMismatch is returned when input vertices disagree on the
	// length of their position vectors.
	ErrDimensionMismatch = errors.New("convexhull: non-uniform input dimension")

	// ErrConfiguration is returned for an invalid Config, checked before any
	// geometry is computed.
	ErrConfiguration = errors.New("convexhull: invalid configuration")

	// ErrSingularInput is returned when no D+1 affinely independent points
	// can be found to seed the hull (coincident or otherwise flat input).
	// Jittering the input with DegeneratePerturbInternal may help.
	ErrSingularInput = errors.New("convexhull: singular input data")
)
