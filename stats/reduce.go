package stats

import (
	"fmt"
	"math"

	"scalardat/table"
)

// TableSummary holds one Summary per column of a scalar table,
// in header order.
type TableSummary struct {
	Names     []string
	Summaries []*Summary
}

// SummarizeTable reduces every column of t with the same
// equilibration cut.
func SummarizeTable(t *table.Table, nequil int) (*TableSummary, error) {
	names := t.ColumnNames()
	summaries := make([]*Summary, len(names))
	for i, name := range names {
		trace, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		summary, err := Summarize(trace, nequil)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		summaries[i] = summary
	}
	return &TableSummary{Names: names, Summaries: summaries}, nil
}

func (ts *TableSummary) Get(name string) (*Summary, error) {
	for i, n := range ts.Names {
		if n == name {
			return ts.Summaries[i], nil
		}
	}
	return nil, &table.ColumnNotFoundError{Name: name}
}

// MeanErrorTable renders the reduction as a one-row table with
// <name>_mean and <name>_error columns, in header order.
func (ts *TableSummary) MeanErrorTable() (*table.Table, error) {
	names := make([]string, 0, 2*len(ts.Names))
	row := make([]float64, 0, 2*len(ts.Names))
	for i, name := range ts.Names {
		names = append(names, name+"_mean", name+"_error")
		row = append(row, ts.Summaries[i].Mean, ts.Summaries[i].Error)
	}
	return table.New(names, [][]float64{row})
}

// Combined is the twist average of one column over several runs.
type Combined struct {
	Name  string
	Mean  float64
	Error float64
	Runs  int
}

// CombineRuns twist-averages per-run reductions of the same schema:
// the combined mean is the mean of the run means, and the combined
// error is sqrt(sum of squared run errors) / number of runs.
func CombineRuns(runs []*TableSummary) ([]Combined, error) {
	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs to combine")
	}
	names := runs[0].Names
	for i, run := range runs {
		if len(run.Names) != len(names) {
			return nil, fmt.Errorf(
				"run %d has %d columns, expected %d",
				i, len(run.Names), len(names))
		}
		for j, name := range run.Names {
			if name != names[j] {
				return nil, fmt.Errorf(
					"run %d column %d is %s, expected %s",
					i, j, name, names[j])
			}
		}
	}

	combined := make([]Combined, len(names))
	for j, name := range names {
		meanAcc := NewWelford()
		errSq := 0.0
		for _, run := range runs {
			meanAcc.Update(run.Summaries[j].Mean)
			errSq += run.Summaries[j].Error * run.Summaries[j].Error
		}
		combined[j] = Combined{
			Name:  name,
			Mean:  meanAcc.Mean(),
			Error: math.Sqrt(errSq) / float64(len(runs)),
			Runs:  len(runs),
		}
	}
	return combined, nil
}
