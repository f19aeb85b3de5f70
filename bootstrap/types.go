// Package bootstrap defines the resampling strategies and run options.
package bootstrap

import (
	"fmt"
	"math/rand"
)

// Method selects how the B×n resample matrix is drawn.
//
//   - Ordinary   — every draw is an independent uniform draw from the
//     sample with replacement. The textbook i.i.d. bootstrap.
//
//   - Balanced   — the whole matrix is a random permutation of B copies
//     of the sample laid end-to-end, so every observation appears
//     exactly B times across all rows combined. Removes the first-moment
//     bias the resampling step itself introduces.
//
//   - Antithetic — rows come in negatively correlated pairs: each draw
//     from the low end of the empirical-influence ordering is mirrored
//     by the corresponding draw from the high end. Variance reduction
//     for the downstream statistic; requires an estimator.
type Method int

const (
	// Ordinary mode: independent uniform draws with replacement.
	Ordinary Method = iota

	// Balanced mode: random permutation of B full copies of the sample.
	Balanced

	// Antithetic mode: influence-paired draws; needs an estimator and an
	// even effective row count (odd b is floored to 2·(b/2) rows).
	Antithetic
)

// String returns the conventional lower-case method name.
func (m Method) String() string {
	switch m {
	case Ordinary:
		return "ordinary"
	case Balanced:
		return "balanced"
	case Antithetic:
		return "antithetic"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a conventional method name ("ordinary", "balanced",
// "antithetic") to its Method. Unrecognized names return
// ErrUnknownMethod wrapped with the offending value.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "ordinary":
		return Ordinary, nil
	case "balanced":
		return Balanced, nil
	case "antithetic":
		return Antithetic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Options configures a bootstrap run.
//
// Fields:
//   - Rand    — source of all draws and permutations. Supply a seeded
//     *rand.Rand for reproducible resamples (same seed ⇒ same matrix);
//     nil falls back to a generator seeded from the global source.
//   - Workers — upper bound on goroutines applying the estimator to
//     rows in Bootstrap. Values ≤ 1 run serially. Rows are always drawn
//     before the fan-out, so Workers never changes the drawn matrix or
//     the output order, only the wall-clock time.
//
// Example:
//
//	opts := bootstrap.DefaultOptions()
//	opts.Rand = rand.New(rand.NewSource(42))
//	stats, err := bootstrap.Bootstrap(sample, mean, 1000, bootstrap.Balanced, &opts)
type Options struct {
	Rand    *rand.Rand
	Workers int
}

// DefaultOptions returns the baseline configuration: serial estimator
// application and a generator seeded from the global source.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
