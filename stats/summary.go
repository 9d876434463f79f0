package stats

import "fmt"

// Summary holds the equilibrated statistics of one scalar column.
type Summary struct {
	Count    int64
	Nequil   int64
	Mean     float64
	Variance float64
	Error    float64
	Kappa    float64
}

// Summarize reduces a sample trace after dropping the first nequil
// equilibration samples.
func Summarize(trace []float64, nequil int) (*Summary, error) {
	if nequil < 0 {
		return nil, fmt.Errorf("negative equilibration cut %d", nequil)
	}
	if nequil >= len(trace) {
		return nil, fmt.Errorf(
			"equilibration cut %d leaves no samples out of %d",
			nequil, len(trace))
	}
	cut := trace[nequil:]

	welford := NewWelford()
	for _, v := range cut {
		welford.Update(v)
	}
	kappa := Kappa(cut)
	return &Summary{
		Count:    int64(len(cut)),
		Nequil:   int64(nequil),
		Mean:     welford.Mean(),
		Variance: welford.SampleVariance(),
		Error:    ErrorWithKappa(cut, kappa),
		Kappa:    kappa,
	}, nil
}
