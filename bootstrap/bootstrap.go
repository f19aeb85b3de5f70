package bootstrap

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/jmichuda/resample/jackknife"
)

// Estimator is the statistic being bootstrapped; identical to
// jackknife.Estimator because antithetic resampling feeds the same
// callable to the jackknife to compute empirical influence.
type Estimator = jackknife.Estimator

// Bootstrap draws b resamples of sample under method and returns the
// estimator applied to each resample, in row order. For the Antithetic
// method with odd b the effective replicate count is 2·(b/2); see
// Resamples.
//
// Returns ErrNilEstimator when est is nil — callers who want the raw
// draws use Resamples instead.
func Bootstrap(sample []float64, est Estimator, b int, method Method, opts *Options) ([]float64, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}

	x, err := Resamples(sample, est, b, method, opts)
	if err != nil {
		return nil, err
	}

	rows, _ := x.Dims()
	out := make([]float64, rows)

	workers := 1
	if opts != nil && opts.Workers > 1 {
		workers = opts.Workers
	}
	if workers > rows {
		workers = rows
	}

	if workers == 1 {
		for i := 0; i < rows; i++ {
			out[i] = est(x.RawRowView(i))
		}

		return out, nil
	}

	// Strided fan-out: the matrix is fully drawn already, so worker
	// count affects wall-clock time only, never values or order.
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < rows; i += workers {
				out[i] = est(x.RawRowView(i))
			}
		}(w)
	}
	wg.Wait()

	return out, nil
}

// Resamples draws the raw resample matrix: one resample of size n per
// row, drawn from sample under method. Ordinary and Balanced ignore
// est; Antithetic requires it (ErrEstimatorRequired otherwise) and
// returns 2·(b/2) rows — with odd b the unpaired extra resample is
// silently dropped, a property of the pairing construction.
func Resamples(sample []float64, est Estimator, b int, method Method, opts *Options) (*mat.Dense, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	if b < 1 {
		return nil, ErrBadResampleCount
	}

	rng := rngFor(opts)

	switch method {
	case Ordinary:
		return ordinary(sample, b, rng), nil
	case Balanced:
		return balanced(sample, b, rng), nil
	case Antithetic:
		if est == nil {
			return nil, ErrEstimatorRequired
		}

		return antithetic(sample, est, b, rng)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// rngFor returns the caller's generator, or one seeded from the global
// source when none was supplied.
func rngFor(opts *Options) *rand.Rand {
	if opts != nil && opts.Rand != nil {
		return opts.Rand
	}

	return rand.New(rand.NewSource(rand.Int63()))
}

// ordinary fills the b×n matrix with independent uniform draws from
// sample, with replacement.
func ordinary(sample []float64, b int, rng *rand.Rand) *mat.Dense {
	n := len(sample)
	data := make([]float64, b*n)
	for i := range data {
		data[i] = sample[rng.Intn(n)]
	}

	return mat.NewDense(b, n, data)
}

// balanced lays b full copies of sample end-to-end, permutes the pool,
// and reshapes it to b×n. Every observation occurs exactly b times in
// the whole matrix.
func balanced(sample []float64, b int, rng *rand.Rand) *mat.Dense {
	n := len(sample)
	pool := make([]float64, 0, b*n)
	for i := 0; i < b; i++ {
		pool = append(pool, sample...)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return mat.NewDense(b, n, pool)
}

// antithetic builds b/2 "low" rows by drawing rank positions uniformly
// from the ascending empirical-influence ordering, then mirrors each
// drawn rank r to n−1−r for the paired "high" rows. Low rows are
// stacked above high rows; row i and row i+b/2 are antithetic partners.
func antithetic(sample []float64, est Estimator, b int, rng *rand.Rand) (*mat.Dense, error) {
	infl, err := jackknife.EmpiricalInfluence(sample, est)
	if err != nil {
		return nil, err
	}

	n := len(sample)
	order := argsort(infl)

	half := b / 2
	if half == 0 {
		// b=1 floors to zero pairs; there is no matrix to return.
		return nil, fmt.Errorf("%w: antithetic pairing needs b >= 2", ErrBadResampleCount)
	}
	rows := 2 * half
	data := make([]float64, rows*n)
	for i := 0; i < half; i++ {
		for j := 0; j < n; j++ {
			r := rng.Intn(n)
			data[i*n+j] = sample[order[r]]
			data[(half+i)*n+j] = sample[order[n-1-r]]
		}
	}

	return mat.NewDense(rows, n, data), nil
}

// argsort returns the sample indices ordered by ascending value of xs,
// stable so equal influences keep their original relative order.
func argsort(xs []float64) []int {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })

	return order
}
