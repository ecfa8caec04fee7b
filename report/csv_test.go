package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "losses.csv")
	table := LossTable([]string{"Auto"}, sampleRecords()[:2])
	require.NoError(t, WriteCSV(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Auto", "Total"}, header)

	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "0", row[0])
	assert.Equal(t, "100.000000", row[1])
}

func TestWriteCSVBadPath(t *testing.T) {
	t.Parallel()

	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), Table{Columns: []string{"A"}})
	assert.Error(t, err)
}
