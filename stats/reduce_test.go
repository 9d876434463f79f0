package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scalardat/table"
	"scalardat/utils"
)

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]float64{10, 2, 4, 6}, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), summary.Count)
	assert.Equal(t, int64(1), summary.Nequil)
	utils.AssertClose(t, summary.Mean, 4.0, 1e-12)
	utils.AssertClose(t, summary.Variance, 4.0, 1e-12)
	utils.AssertClose(t, summary.Kappa, 1.0, 1e-12)
	// sd = 2, neff = 3
	utils.AssertClose(t, summary.Error, 1.1547005, 1e-6)
}

func TestSummarizeBadCut(t *testing.T) {
	_, err := Summarize([]float64{1, 2, 3}, 3)
	assert.Error(t, err)
	_, err = Summarize([]float64{1, 2, 3}, -1)
	assert.Error(t, err)
	_, err = Summarize(nil, 0)
	assert.Error(t, err)
}

func testTable(t *testing.T) *table.Table {
	tbl, err := table.New(
		[]string{"E", "V"},
		[][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}})
	assert.NoError(t, err)
	return tbl
}

func TestSummarizeTable(t *testing.T) {
	ts, err := SummarizeTable(testTable(t), 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"E", "V"}, ts.Names)

	e, err := ts.Get("E")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), e.Count)
	utils.AssertClose(t, e.Mean, 3.5, 1e-12)

	v, err := ts.Get("V")
	assert.NoError(t, err)
	utils.AssertClose(t, v.Mean, 35.0, 1e-12)

	_, err = ts.Get("P")
	assert.Error(t, err)
}

func TestSummarizeTableCutTooDeep(t *testing.T) {
	_, err := SummarizeTable(testTable(t), 4)
	assert.Error(t, err)
}

func TestMeanErrorTable(t *testing.T) {
	ts, err := SummarizeTable(testTable(t), 0)
	assert.NoError(t, err)

	out, err := ts.MeanErrorTable()
	assert.NoError(t, err)
	assert.Equal(t,
		[]string{"E_mean", "E_error", "V_mean", "V_error"},
		out.ColumnNames())
	assert.Equal(t, 1, out.NumRows())

	row, err := out.Row(0)
	assert.NoError(t, err)
	utils.AssertClose(t, row["E_mean"], 2.5, 1e-12)
	utils.AssertClose(t, row["V_mean"], 25.0, 1e-12)
}

func runSummary(names []string, means, errors []float64) *TableSummary {
	summaries := make([]*Summary, len(names))
	for i := range names {
		summaries[i] = &Summary{Count: 10, Mean: means[i], Error: errors[i]}
	}
	return &TableSummary{Names: names, Summaries: summaries}
}

func TestCombineRuns(t *testing.T) {
	runs := []*TableSummary{
		runSummary([]string{"E"}, []float64{1}, []float64{3}),
		runSummary([]string{"E"}, []float64{3}, []float64{4}),
	}
	combined, err := CombineRuns(runs)
	assert.NoError(t, err)
	assert.Len(t, combined, 1)
	assert.Equal(t, "E", combined[0].Name)
	assert.Equal(t, 2, combined[0].Runs)
	utils.AssertClose(t, combined[0].Mean, 2.0, 1e-12)
	utils.AssertClose(t, combined[0].Error, 2.5, 1e-12)
}

func TestCombineRunsSchemaMismatch(t *testing.T) {
	runs := []*TableSummary{
		runSummary([]string{"E"}, []float64{1}, []float64{3}),
		runSummary([]string{"V"}, []float64{3}, []float64{4}),
	}
	_, err := CombineRuns(runs)
	assert.Error(t, err)

	runs[1] = runSummary([]string{"E", "V"}, []float64{1, 2}, []float64{3, 4})
	_, err = CombineRuns(runs)
	assert.Error(t, err)

	_, err = CombineRuns(nil)
	assert.Error(t, err)
}
