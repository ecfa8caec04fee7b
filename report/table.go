// Package report turns simulation output into plain tables and writes them
// as CSV files or a two-sheet XLSX workbook.
package report

import (
	"fmt"
	"sort"

	"github.com/rustyeddy/claimsim/risk"
	"github.com/rustyeddy/claimsim/sim"
)

// Sheet names used by the workbook export.
const (
	LossSheet    = "Simulated Annual Losses"
	MetricsSheet = "Risk Metrics Summary"
)

// Row maps a column name to its value for one table row.
type Row map[string]any

// Table is the plain tabular form handed to exporters: an ordered header
// plus one Row per record.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// ColumnSummary pairs a loss column (a line, or the portfolio total) with
// its risk statistics.
type ColumnSummary struct {
	Name    string
	Summary risk.Summary
}

// SummarizeColumns computes a risk summary for every line column and for the
// portfolio total, in that order.
func SummarizeColumns(lineNames []string, records []sim.AnnualLoss, confidences []float64) ([]ColumnSummary, error) {
	out := make([]ColumnSummary, 0, len(lineNames)+1)

	for li, name := range lineNames {
		s, err := risk.Compute(sim.LineSeries(records, li), confidences)
		if err != nil {
			return nil, fmt.Errorf("summarize %q: %w", name, err)
		}
		out = append(out, ColumnSummary{Name: name, Summary: s})
	}

	s, err := risk.Compute(sim.Totals(records), confidences)
	if err != nil {
		return nil, fmt.Errorf("summarize total: %w", err)
	}
	out = append(out, ColumnSummary{Name: "Total", Summary: s})

	return out, nil
}

// LossTable lays out one row per simulated year: Year, one column per line,
// and the Total column.
func LossTable(lineNames []string, records []sim.AnnualLoss) Table {
	columns := make([]string, 0, len(lineNames)+2)
	columns = append(columns, "Year")
	columns = append(columns, lineNames...)
	columns = append(columns, "Total")

	rows := make([]Row, len(records))
	for i, rec := range records {
		row := Row{"Year": rec.Year, "Total": rec.Total}
		for li, name := range lineNames {
			row[name] = rec.ByLine[li]
		}
		rows[i] = row
	}

	return Table{Name: LossSheet, Columns: columns, Rows: rows}
}

// MetricsTable lays out one row per loss column with its Expected Loss and
// the VaR/TVaR values at each confidence level (ascending).
func MetricsTable(summaries []ColumnSummary, confidences []float64) Table {
	confs := make([]float64, len(confidences))
	copy(confs, confidences)
	sort.Float64s(confs)

	columns := []string{"Line", "Expected Loss"}
	for _, c := range confs {
		columns = append(columns, metricLabel("VaR", c))
	}
	for _, c := range confs {
		columns = append(columns, metricLabel("TVaR", c))
	}

	rows := make([]Row, len(summaries))
	for i, cs := range summaries {
		row := Row{
			"Line":          cs.Name,
			"Expected Loss": cs.Summary.ExpectedLoss,
		}
		for _, c := range confs {
			row[metricLabel("VaR", c)] = cs.Summary.VaR[c]
			row[metricLabel("TVaR", c)] = cs.Summary.TVaR[c]
		}
		rows[i] = row
	}

	return Table{Name: MetricsSheet, Columns: columns, Rows: rows}
}

func metricLabel(metric string, confidence float64) string {
	return fmt.Sprintf("%s %g%%", metric, confidence*100)
}
