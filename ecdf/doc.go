// Package ecdf builds empirical cumulative distribution functions and
// measures the discrepancy between two distribution functions (MISE).
//
// 🚀 What is an ECDF?
//
//	The empirical CDF of a sample is the step function
//	F̂(x) = #{observations ≤ x} / n — the non-parametric estimate of the
//	underlying distribution. It is the backbone of:
//	  • Goodness-of-fit checks (sample vs. theoretical CDF)
//	  • Validating bootstrap / jackknife output distributions
//	  • Quantile and tail-probability reads straight off the data
//
// ✨ Key features:
//   - New(sample) returns a first-class Func closing over an owned,
//     sorted snapshot — later mutation of the caller's slice cannot
//     change the function's behavior
//   - right-continuous step rule: ties at x count as ≤ x, F̂(max) = 1
//   - Func.Over evaluates a whole grid of query points in one call
//   - MISE(f, g, cmin, cmax, n) integrates (f−g)² by a left-endpoint
//     Riemann sum over [cmin, cmax) — compare an ECDF against any
//     other distribution function (another ECDF, gonum's distuv CDFs…)
//
// ⚙️ Usage:
//
//	import "github.com/jmichuda/resample/ecdf"
//
//	f, err := ecdf.New([]float64{3, 1, 4, 1, 5})
//	if err != nil { ... }          // ErrEmptySample on empty input
//	p := f(3.5)                    // fraction of sample ≤ 3.5
//
//	d, err := ecdf.MISE(f, g, 0, 10, 1000)
//
// Errors:
//   - ErrEmptySample   — New on an empty sample.
//   - ErrBadInterval   — MISE with cmax <= cmin.
//   - ErrBadPointCount — MISE with n <= 0.
//
// Complexity: New is O(n log n) once; each query is O(log n);
// MISE is O(n) evaluations of each function.
package ecdf
