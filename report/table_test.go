package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/claimsim/sim"
)

func sampleRecords() []sim.AnnualLoss {
	return []sim.AnnualLoss{
		{Year: 0, ByLine: []float64{100, 50}, Total: 150},
		{Year: 1, ByLine: []float64{0, 0}, Total: 0},
		{Year: 2, ByLine: []float64{20, 400}, Total: 420},
		{Year: 3, ByLine: []float64{75, 25}, Total: 100},
	}
}

func TestLossTableLayout(t *testing.T) {
	t.Parallel()

	table := LossTable([]string{"Auto", "Home"}, sampleRecords())

	assert.Equal(t, LossSheet, table.Name)
	assert.Equal(t, []string{"Year", "Auto", "Home", "Total"}, table.Columns)
	require.Len(t, table.Rows, 4)

	assert.Equal(t, 2, table.Rows[2]["Year"])
	assert.Equal(t, 20.0, table.Rows[2]["Auto"])
	assert.Equal(t, 400.0, table.Rows[2]["Home"])
	assert.Equal(t, 420.0, table.Rows[2]["Total"])
}

func TestSummarizeColumns(t *testing.T) {
	t.Parallel()

	summaries, err := SummarizeColumns([]string{"Auto", "Home"}, sampleRecords(), []float64{0.95})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "Auto", summaries[0].Name)
	assert.Equal(t, "Home", summaries[1].Name)
	assert.Equal(t, "Total", summaries[2].Name)

	// Mean is linear, so the total's expected loss is the sum of the lines'.
	assert.InDelta(t,
		summaries[0].Summary.ExpectedLoss+summaries[1].Summary.ExpectedLoss,
		summaries[2].Summary.ExpectedLoss, 1e-9)
}

func TestSummarizeColumnsEmptyRecords(t *testing.T) {
	t.Parallel()

	_, err := SummarizeColumns([]string{"Auto"}, nil, []float64{0.95})
	assert.Error(t, err)
}

func TestMetricsTableLayout(t *testing.T) {
	t.Parallel()

	// Confidence levels deliberately out of order; the table sorts them.
	summaries, err := SummarizeColumns([]string{"Auto", "Home"}, sampleRecords(), []float64{0.99, 0.95})
	require.NoError(t, err)

	table := MetricsTable(summaries, []float64{0.99, 0.95})

	assert.Equal(t, MetricsSheet, table.Name)
	assert.Equal(t,
		[]string{"Line", "Expected Loss", "VaR 95%", "VaR 99%", "TVaR 95%", "TVaR 99%"},
		table.Columns)
	require.Len(t, table.Rows, 3)

	total := table.Rows[2]
	assert.Equal(t, "Total", total["Line"])

	varVal, ok := total["VaR 95%"].(float64)
	require.True(t, ok)
	tvarVal, ok := total["TVaR 95%"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, tvarVal, varVal)
}
