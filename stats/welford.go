package stats

import "math"

// Welford accumulates mean and variance of a trace in one pass.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{}
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

func (welford *Welford) Count() uint64 {
	return welford.count
}

func (welford *Welford) Mean() float64 {
	return welford.mean
}

// Variance is the population variance (ddof 0).
func (welford *Welford) Variance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count)
}

// SampleVariance is the unbiased variance (ddof 1).
func (welford *Welford) SampleVariance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) SD() float64 {
	return math.Sqrt(welford.SampleVariance())
}
