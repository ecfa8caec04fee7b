// Package sim generates aggregate annual insurance losses with a
// frequency-severity Monte Carlo model: Poisson claim counts, lognormal
// claim sizes, per-claim deductible and limit.
package sim

import (
	"fmt"
	"math"

	"github.com/rustyeddy/claimsim/config"
)

// AnnualLoss is one simulated policy year: the paid loss per line (in config
// order) plus the portfolio total. Claim-level amounts are not retained;
// the model's output is the aggregate distribution.
type AnnualLoss struct {
	Year   int
	ByLine []float64
	Total  float64
}

// Simulate runs the frequency-severity simulation described by cfg and
// returns exactly cfg.NumYears records.
//
// Draw order is fixed: every year of a line is simulated before the next
// line starts, and claims within a year are drawn in sequence. With a seeded
// Source the output is therefore identical across runs.
func Simulate(cfg *config.Config, src Source) ([]AnnualLoss, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("sim: source is required")
	}

	records := make([]AnnualLoss, cfg.NumYears)
	for y := range records {
		records[y] = AnnualLoss{Year: y, ByLine: make([]float64, len(cfg.Lines))}
	}

	for li, line := range cfg.Lines {
		for y := 0; y < cfg.NumYears; y++ {
			var sum float64
			for _, paid := range drawYear(src, line) {
				sum += paid
			}
			records[y].ByLine[li] = sum
			records[y].Total += sum
		}
	}

	return records, nil
}

// drawYear simulates one policy year of one line and returns the paid amount
// of every claim. Kept at claim granularity so tests can check per-claim
// policy terms; Simulate only keeps the sums.
func drawYear(src Source, line config.LineConfig) []float64 {
	n := src.Poisson(line.Frequency)
	if n <= 0 {
		return nil
	}

	paids := make([]float64, n)
	for i := range paids {
		raw := src.LogNormal(line.SeverityLogMean, line.SeverityLogStd)
		paid := math.Max(0, raw-line.Deductible)
		if line.Limit != nil {
			paid = math.Min(paid, *line.Limit)
		}
		paids[i] = paid
	}
	return paids
}

// Totals extracts the portfolio total column from a run.
func Totals(records []AnnualLoss) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Total
	}
	return out
}

// LineSeries extracts the annual losses of the line at index li.
func LineSeries(records []AnnualLoss, li int) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.ByLine[li]
	}
	return out
}
