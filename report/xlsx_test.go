package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbookTwoSheets(t *testing.T) {
	t.Parallel()

	losses := LossTable([]string{"Auto", "Home"}, sampleRecords())
	summaries, err := SummarizeColumns([]string{"Auto", "Home"}, sampleRecords(), []float64{0.95})
	require.NoError(t, err)
	metrics := MetricsTable(summaries, []float64{0.95})

	data, err := BuildWorkbook(losses, metrics)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{LossSheet, MetricsSheet}, f.GetSheetList())

	a1, err := f.GetCellValue(LossSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Year", a1)

	d1, err := f.GetCellValue(LossSheet, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Total", d1)

	// Row for year 2 carries the Home loss in column C.
	c4, err := f.GetCellValue(LossSheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "400", c4)

	m1, err := f.GetCellValue(MetricsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Line", m1)

	m2, err := f.GetCellValue(MetricsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Auto", m2)
}

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.xlsx")
	losses := LossTable([]string{"Auto", "Home"}, sampleRecords())
	require.NoError(t, WriteWorkbook(path, losses))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LossSheet)
	require.NoError(t, err)
	assert.Len(t, rows, len(sampleRecords())+1)
}
