package ecdf_test

import (
	"testing"

	"github.com/jmichuda/resample/ecdf"
)

// syntheticSample builds a predictable sample of size n.
func syntheticSample(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64((i * 7919) % n) // scrambled but deterministic
	}

	return xs
}

// benchmarkNew measures ECDF construction for a sample of size n.
func benchmarkNew(b *testing.B, n int) {
	sample := syntheticSample(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecdf.New(sample); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_1k constructs the ECDF of a 1 000-point sample.
func BenchmarkNew_1k(b *testing.B) { benchmarkNew(b, 1_000) }

// BenchmarkNew_100k constructs the ECDF of a 100 000-point sample.
func BenchmarkNew_100k(b *testing.B) { benchmarkNew(b, 100_000) }

// BenchmarkFuncQuery measures a single query against a 100 000-point
// ECDF (binary search, O(log n)).
func BenchmarkFuncQuery(b *testing.B) {
	f, err := ecdf.New(syntheticSample(100_000))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f(float64(i % 100_000))
	}
}

// BenchmarkMISE measures a 10 000-point Riemann integration of two
// 1 000-point ECDFs.
func BenchmarkMISE(b *testing.B) {
	f, err := ecdf.New(syntheticSample(1_000))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	g, err := ecdf.New(syntheticSample(1_000))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ecdf.MISE(f, g, 0, 1_000, 10_000); err != nil {
			b.Fatalf("MISE failed: %v", err)
		}
	}
}
