// Package bootstrap draws bootstrap resamples from an observed sample
// and applies an estimator to each, approximating the estimator's
// sampling distribution without a parametric model.
//
// 🚀 What is the bootstrap?
//
//	Resample the data B times (with replacement), recompute the
//	statistic on every resample, and read its spread, bias and
//	quantiles straight off the B replicates. Three strategies:
//	  • Ordinary   — independent uniform draws (the classic)
//	  • Balanced   — every observation appears exactly B times overall
//	  • Antithetic — influence-paired rows for variance reduction
//
// ✨ Key features:
//   - Bootstrap(sample, est, b, method, opts) → B statistics, row order
//     preserved
//   - Resamples(sample, est, b, method, opts) → the raw B×n
//     *mat.Dense resample matrix when you want the draws themselves
//   - explicit *rand.Rand in Options: same seed ⇒ identical resamples
//   - optional order-preserving worker fan-out for expensive estimators
//   - antithetic mode couples into jackknife.EmpiricalInfluence; with
//     odd b the extra row is floored away (2·(b/2) rows), by the
//     method's pairing construction — documented, not an error
//
// ⚙️ Usage:
//
//	import "github.com/jmichuda/resample/bootstrap"
//
//	opts := bootstrap.DefaultOptions()
//	opts.Rand = rand.New(rand.NewSource(7))
//
//	stats, err := bootstrap.Bootstrap(sample, mean, 2000, bootstrap.Balanced, &opts)
//	if err != nil { ... }
//	// stats[i] = mean of resample i
//
// Errors:
//   - ErrEmptySample      — no observations to draw from.
//   - ErrBadResampleCount — b < 1.
//   - ErrUnknownMethod    — method outside the three strategies.
//   - ErrEstimatorRequired — Antithetic without an estimator.
//   - ErrNilEstimator     — Bootstrap with a nil estimator (use
//     Resamples for the raw matrix).
//
// Complexity: O(B·n) draws plus B estimator calls (antithetic adds one
// jackknife pass: n estimator calls on size n−1 subsamples).
package bootstrap
