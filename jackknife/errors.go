package jackknife

import "errors"

var (
	// ErrSampleTooSmall indicates a sample with fewer than two
	// observations; no leave-one-out subsample is definable.
	ErrSampleTooSmall = errors.New("jackknife: sample must contain at least two observations")
	// ErrNilEstimator indicates a nil estimator was supplied.
	ErrNilEstimator = errors.New("jackknife: estimator must not be nil")
)
