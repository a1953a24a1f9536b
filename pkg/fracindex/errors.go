package fracindex

import "errors"

// Sentinel errors for common error conditions
var (
	// ErrInvalidRange is returned when both bounds are present and prev is not
	// numerically below next. It is also returned when only next is given and
	// next <= 0: head insertion treats 0 as the implicit lower bound, so no index
	// can satisfy 0 < v < next. Even-spacing relocation applies the same rule.
	ErrInvalidRange = errors.New("invalid range: prev must be less than next")

	// ErrMalformedIndex is returned when a bound is not a decimal number.
	ErrMalformedIndex = errors.New("malformed fractional index")

	// ErrInvalidConfig is returned by Config.Validate and the config loaders.
	ErrInvalidConfig = errors.New("invalid fracindex config")
)
