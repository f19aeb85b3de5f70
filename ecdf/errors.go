package ecdf

import "errors"

var (
	// ErrEmptySample indicates the input sample has no observations;
	// an empirical distribution function is undefined for it.
	ErrEmptySample = errors.New("ecdf: sample must contain at least one observation")
	// ErrBadInterval indicates an integration interval with cmax <= cmin.
	ErrBadInterval = errors.New("ecdf: integration interval must satisfy cmin < cmax")
	// ErrBadPointCount indicates a non-positive evaluation point count.
	ErrBadPointCount = errors.New("ecdf: evaluation point count must be positive")
)
