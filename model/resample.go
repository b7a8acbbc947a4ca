package model

import "sort"

// Trapz integrates y sampled at uniform spacing dx using the trapezoidal
// rule. Fewer than two samples integrate to zero.
func Trapz(y []float64, dx float64) float64 {
	if len(y) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(y); i++ {
		sum += (y[i-1] + y[i]) / 2.0
	}
	return sum * dx
}

// Interp evaluates the piecewise-linear series (xOld, y) at every point of
// xNew and returns the interpolated values. Points of xNew outside
// [xOld[0], xOld[len-1]] clamp to the nearest boundary value; no slope is
// extrapolated. xOld must be strictly increasing and the same length as y.
func Interp(xNew, xOld, y []float64) []float64 {
	out := make([]float64, len(xNew))
	for i, x := range xNew {
		out[i] = interpAt(x, xOld, y)
	}
	return out
}

func interpAt(x float64, xOld, y []float64) float64 {
	n := len(xOld)
	if n == 1 {
		return y[0]
	}
	if x <= xOld[0] {
		return y[0]
	}
	if x >= xOld[n-1] {
		return y[n-1]
	}
	// First index with xOld[j] >= x; x is inside (xOld[j-1], xOld[j]].
	j := sort.SearchFloat64s(xOld, x)
	t := (x - xOld[j-1]) / (xOld[j] - xOld[j-1])
	return y[j-1] + t*(y[j]-y[j-1])
}

// timeAxis returns n evenly spaced samples i*dt for i in [0, n), the
// half-open convention used for source time functions: the endpoint n*dt is
// not part of the axis.
func timeAxis(dt float64, n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}
