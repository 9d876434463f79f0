package stats

import "math"

// Kappa estimates the integrated autocorrelation time of trace:
// 1 + 2 * sum of leading positive normalized autocorrelations.
// The sum stops at the first non-positive term. A trace too short
// or with zero variance has kappa 1 (uncorrelated).
func Kappa(trace []float64) float64 {
	n := len(trace)
	if n < 2 {
		return 1
	}
	welford := NewWelford()
	for _, v := range trace {
		welford.Update(v)
	}
	mean := welford.Mean()
	variance := welford.Variance()
	if variance == 0 {
		return 1
	}

	corrTime := 0.0
	for k := 1; k < n; k++ {
		acc := 0.0
		for i := 0; i+k < n; i++ {
			acc += (trace[i] - mean) * (trace[i+k] - mean)
		}
		autocorr := acc / float64(n-k) / variance
		if autocorr <= 0 {
			break
		}
		corrTime += autocorr
	}
	return 1 + 2*corrTime
}

// Error is the standard error of the mean of trace, corrected for
// autocorrelation: sample standard deviation over sqrt of the
// effective sample count n/kappa.
func Error(trace []float64) float64 {
	return ErrorWithKappa(trace, Kappa(trace))
}

func ErrorWithKappa(trace []float64, kappa float64) float64 {
	n := len(trace)
	if n < 2 {
		return 0
	}
	welford := NewWelford()
	for _, v := range trace {
		welford.Update(v)
	}
	neff := float64(n) / kappa
	return welford.SD() / math.Sqrt(neff)
}
