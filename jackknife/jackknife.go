package jackknife

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Estimator maps a sample to a statistic. It must accept samples of any
// length ≥ 1 (leave-one-out rows have length n−1) and be deterministic
// for identical input; the engine never mutates the slice it passes in,
// and the slice must not be retained past the call.
type Estimator func(sample []float64) float64

// Jackknife computes the estimator on each of the n leave-one-out
// subsamples of sample and returns the n estimates. Estimate i
// corresponds to the subsample with observation i deleted, remaining
// elements in their original relative order.
//
// Returns ErrNilEstimator for a nil estimator and ErrSampleTooSmall
// when sample has fewer than two observations.
func Jackknife(sample []float64, est Estimator) ([]float64, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}
	n := len(sample)
	if n < 2 {
		return nil, ErrSampleTooSmall
	}

	loo := leaveOneOut(sample)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = est(loo.RawRowView(i))
	}

	return out, nil
}

// leaveOneOut assembles the n×(n−1) matrix whose row i is sample with
// observation i removed.
func leaveOneOut(sample []float64) *mat.Dense {
	n := len(sample)
	data := make([]float64, 0, n*(n-1))
	for i := range sample {
		data = append(data, sample[:i]...)
		data = append(data, sample[i+1:]...)
	}

	return mat.NewDense(n, n-1, data)
}

// Bias computes the jackknife estimate of the estimator's bias:
// (n−1) · (mean(jackknife estimates) − est(sample)).
func Bias(sample []float64, est Estimator) (float64, error) {
	jack, err := Jackknife(sample, est)
	if err != nil {
		return 0, err
	}

	nm1 := float64(len(sample) - 1)

	return nm1 * (stat.Mean(jack, nil) - est(sample)), nil
}

// Variance computes the jackknife estimate of the estimator's variance:
// (n−1) · mean((jackknife estimates − their mean)²). The (n−1) factor is
// the standard jackknife inflation; leave-one-out estimates vary far
// less than independent replicates.
func Variance(sample []float64, est Estimator) (float64, error) {
	jack, err := Jackknife(sample, est)
	if err != nil {
		return 0, err
	}

	m := stat.Mean(jack, nil)
	var ss float64
	for _, v := range jack {
		d := v - m
		ss += d * d
	}

	nm1 := float64(len(sample) - 1)

	return nm1 * ss / float64(len(jack)), nil
}

// EmpiricalInfluence computes the empirical influence value of each
// observation: (n−1) · (est(sample) − jackknife estimate i), aligned
// with the sample index. Large-magnitude entries mark observations
// whose removal moves the estimator the most; the antithetic bootstrap
// pairs draws by the ascending order of this vector.
func EmpiricalInfluence(sample []float64, est Estimator) ([]float64, error) {
	jack, err := Jackknife(sample, est)
	if err != nil {
		return nil, err
	}

	theta := est(sample)
	nm1 := float64(len(sample) - 1)

	infl := make([]float64, len(jack))
	for i, v := range jack {
		infl[i] = nm1 * (theta - v)
	}

	return infl, nil
}
