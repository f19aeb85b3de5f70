// Package resample is a non-parametric statistical resampling toolkit:
// bootstrap, jackknife and the empirical machinery that connects them.
//
// 🚀 What is resample?
//
//	Given an observed sample and an estimator (any function from a sample
//	to a statistic), resample approximates the estimator's sampling
//	distribution, bias and variance empirically — no parametric model,
//	no distributional assumptions:
//		• Bootstrap: ordinary, balanced and antithetic resampling
//		• Jackknife: leave-one-out estimates, bias and variance
//		• Empirical influence: per-observation leverage scores
//		• ECDF & MISE: empirical distribution functions and a
//		  Riemann-sum discrepancy measure to validate results
//
// ✨ Why choose resample?
//
//   - Minimal API – plain slices in, plain slices (or a matrix) out
//   - Explicit randomness – pass your own seeded *rand.Rand, get
//     bit-for-bit reproducible resamples; no hidden global state
//   - Honest errors – every precondition surfaces as a sentinel error,
//     never a panic, never a silent fallback
//   - gonum under the hood – matrices and moment arithmetic ride on
//     gonum.org/v1/gonum
//
// Everything is organized under three subpackages:
//
//	bootstrap/ — ordinary, balanced & antithetic resampling engines
//	jackknife/ — leave-one-out estimates, bias, variance & influence
//	ecdf/      — empirical CDF construction + MISE integration
//
// Quick sketch:
//
//	sample ──┬── bootstrap.Bootstrap ──► B statistics
//	         ├── jackknife.Jackknife ──► n leave-one-out statistics
//	         └── ecdf.New ────────────► step function F̂(x)
//
// Antithetic bootstrap internally consumes jackknife.EmpiricalInfluence,
// so the three packages compose exactly the way the statistics do.
//
// Dive into examples/ for full walkthroughs.
//
//	go get github.com/jmichuda/resample
package resample
