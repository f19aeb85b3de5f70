package ecdf

import "sort"

// Func is a distribution function: it maps a query point x to a
// probability in [0,1]. Values returned by New are right-continuous
// step functions that are monotonically non-decreasing and reach 1 at
// and beyond the sample maximum. Any func(float64) float64 with those
// semantics (for example a theoretical CDF) converts to Func and can be
// fed to MISE.
type Func func(x float64) float64

// Over evaluates f at every point of xs and returns the results in the
// same order. It is the vectorized companion to calling f directly.
func (f Func) Over(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

// New returns the empirical cumulative distribution function of sample:
// F̂(x) = #{observations ≤ x} / n.
//
// The returned Func closes over a sorted copy of sample; the caller's
// slice is never retained nor mutated. Ties at the query point count as
// ≤ x, so the step rises exactly at each distinct sample value.
//
// Returns ErrEmptySample if sample has no observations.
func New(sample []float64) (Func, error) {
	n := len(sample)
	if n == 0 {
		return nil, ErrEmptySample
	}

	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	size := float64(n)

	return func(x float64) float64 {
		// Upper bound: first index whose value exceeds x, so ties at x
		// are counted on the ≤ side.
		i := sort.Search(n, func(k int) bool { return sorted[k] > x })

		return float64(i) / size
	}, nil
}
