// Package jackknife computes leave-one-out resampling estimates and the
// bias, variance and empirical-influence diagnostics derived from them.
//
// 🚀 What is the jackknife?
//
//	For a sample of size n, the jackknife recomputes an estimator on
//	each of the n subsamples obtained by deleting one observation.
//	Those n numbers reveal:
//	  • Bias     — systematic drift of the estimator (Quenouille)
//	  • Variance — the Tukey jackknife variance estimate
//	  • Influence — which observations move the estimator the most
//
// ✨ Key features:
//   - Jackknife(sample, est) returns the n leave-one-out estimates,
//     index-aligned with the deleted observation
//   - Bias / Variance apply the standard (n−1) jackknife scalings
//   - EmpiricalInfluence produces the per-observation influence vector
//     consumed by the antithetic bootstrap
//   - inputs are never mutated; the leave-one-out matrix is internal
//     and transient
//
// ⚙️ Usage:
//
//	import "github.com/jmichuda/resample/jackknife"
//
//	mean := func(xs []float64) float64 { return stat.Mean(xs, nil) }
//
//	ests, err := jackknife.Jackknife(sample, mean)   // n estimates
//	bias, err := jackknife.Bias(sample, mean)        // (n−1)(mean(ests)−θ̂)
//	v, err    := jackknife.Variance(sample, mean)    // (n−1)·mean((ests−mean)²)
//	infl, err := jackknife.EmpiricalInfluence(sample, mean)
//
// Errors:
//   - ErrSampleTooSmall — fewer than two observations (n < 2).
//   - ErrNilEstimator   — nil estimator.
//
// Complexity: n estimator calls on subsamples of size n−1, plus the
// O(n²) leave-one-out matrix assembly.
package jackknife
