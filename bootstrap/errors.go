package bootstrap

import "errors"

var (
	// ErrEmptySample indicates an empty input sample; no resample can be
	// drawn from it.
	ErrEmptySample = errors.New("bootstrap: sample must contain at least one observation")
	// ErrBadResampleCount indicates a resample count b < 1.
	ErrBadResampleCount = errors.New("bootstrap: resample count must be positive")
	// ErrUnknownMethod indicates a Method outside the three named
	// strategies (or an unrecognized method name in ParseMethod).
	ErrUnknownMethod = errors.New("bootstrap: method must be ordinary, balanced, or antithetic")
	// ErrEstimatorRequired indicates antithetic resampling without an
	// estimator; empirical influence cannot be computed.
	ErrEstimatorRequired = errors.New("bootstrap: antithetic method requires an estimator")
	// ErrNilEstimator indicates Bootstrap was called with a nil
	// estimator; use Resamples for the raw resample matrix.
	ErrNilEstimator = errors.New("bootstrap: estimator must not be nil")
)
