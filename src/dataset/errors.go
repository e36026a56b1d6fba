package dataset

import "github.com/pkg/errors"

var (
	// ErrInvalidCount is returned when a sample size or bound is negative.
	ErrInvalidCount = errors.New("dataset: count and upper bound must not be negative")

	// ErrRangeTooSmall is returned when more distinct values are requested than
	// the range [0, upperBound] holds.
	ErrRangeTooSmall = errors.New("dataset: range too small for the requested count")

	// ErrUnknownCategory is returned by ParseCategory for unrecognised names.
	ErrUnknownCategory = errors.New("dataset: unknown category")

	// ErrMalformed is returned when a sequence file holds a token that is not an integer.
	ErrMalformed = errors.New("dataset: malformed integer")
)
