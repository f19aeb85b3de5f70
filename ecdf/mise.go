package ecdf

// MISE estimates the mean integrated squared error between two
// distribution functions over [cmin, cmax) by a left-endpoint Riemann
// sum with n equal-width subintervals:
//
//	w = (cmax-cmin)/n
//	MISE ≈ w · Σ (f(xᵢ)-g(xᵢ))²,  xᵢ = cmin + i·w,  i = 0..n-1
//
// cmax itself is never evaluated. The result is non-negative, and zero
// whenever f and g agree on every evaluation point.
//
// Returns ErrBadPointCount if n <= 0 and ErrBadInterval if cmax <= cmin.
func MISE(f, g Func, cmin, cmax float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrBadPointCount
	}
	if cmax <= cmin {
		return 0, ErrBadInterval
	}

	w := (cmax - cmin) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		x := cmin + float64(i)*w
		d := f(x) - g(x)
		sum += d * d
	}

	return w * sum, nil
}
