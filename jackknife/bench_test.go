package jackknife_test

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/jmichuda/resample/jackknife"
)

// benchmarkJackknife measures the full leave-one-out pass (n estimator
// calls on subsamples of size n−1) for a sample of size n.
func benchmarkJackknife(b *testing.B, n int) {
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = float64(i % 97)
	}
	avg := func(xs []float64) float64 { return stat.Mean(xs, nil) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jackknife.Jackknife(sample, avg); err != nil {
			b.Fatalf("Jackknife failed: %v", err)
		}
	}
}

// BenchmarkJackknife_100 runs the leave-one-out pass on 100 points.
func BenchmarkJackknife_100(b *testing.B) { benchmarkJackknife(b, 100) }

// BenchmarkJackknife_1000 runs the leave-one-out pass on 1 000 points.
func BenchmarkJackknife_1000(b *testing.B) { benchmarkJackknife(b, 1_000) }

// BenchmarkVariance_500 measures the derived variance estimate, which
// adds a moment pass on top of the jackknife itself.
func BenchmarkVariance_500(b *testing.B) {
	sample := make([]float64, 500)
	for i := range sample {
		sample[i] = float64(i % 97)
	}
	avg := func(xs []float64) float64 { return stat.Mean(xs, nil) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jackknife.Variance(sample, avg); err != nil {
			b.Fatalf("Variance failed: %v", err)
		}
	}
}
