package ga

import "errors"

var (
	// ErrInvalidBounds is returned when individual size bounds are unusable
	ErrInvalidBounds = errors.New("invalid individual size bounds")
	// ErrInvalidSize is returned for a negative population size
	ErrInvalidSize = errors.New("invalid population size")
	// ErrEmptyTarget is returned when evolving towards an empty string
	ErrEmptyTarget = errors.New("empty target")
	// ErrMissingStrategy is returned when a generation is missing one of its strategies
	ErrMissingStrategy = errors.New("missing strategy")
	// ErrUnknownStrategy is returned when a strategy name is not registered
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrScoreCount is returned when a scorer does not return one score per individual
	ErrScoreCount = errors.New("score count does not match population size")
)
