// Package risk derives summary statistics from a sample of simulated annual
// losses: expected loss, Value at Risk, and Tail Value at Risk.
package risk

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput is returned when the loss sample has no observations.
	ErrEmptyInput = errors.New("empty loss sample")

	// ErrInvalidConfidence is returned when a confidence level falls
	// outside the open interval (0,1).
	ErrInvalidConfidence = errors.New("confidence level must be in (0,1)")
)

// Summary holds the risk statistics of one loss sample. VaR and TVaR are
// keyed by confidence level.
type Summary struct {
	ExpectedLoss float64
	VaR          map[float64]float64
	TVaR         map[float64]float64
}

// Compute derives the Summary of losses at the given confidence levels.
//
// VaR(c) is the empirical quantile at probability c, computed with gonum's
// stat.Quantile using LinInterp: the empirical CDF is linearly interpolated
// between order statistics, so non-integer ranks land between sample points
// instead of snapping to one of them. TVaR(c) is the mean of every loss
// >= VaR(c); the quantile always lies within [min, max] of the sample, so
// that tail is never empty.
func Compute(losses []float64, confidences []float64) (Summary, error) {
	if len(losses) == 0 {
		return Summary{}, ErrEmptyInput
	}
	for _, c := range confidences {
		if c <= 0 || c >= 1 {
			return Summary{}, fmt.Errorf("%w: got %v", ErrInvalidConfidence, c)
		}
	}

	sorted := make([]float64, len(losses))
	copy(sorted, losses)
	sort.Float64s(sorted)

	s := Summary{
		ExpectedLoss: stat.Mean(sorted, nil),
		VaR:          make(map[float64]float64, len(confidences)),
		TVaR:         make(map[float64]float64, len(confidences)),
	}
	for _, c := range confidences {
		v := stat.Quantile(c, stat.LinInterp, sorted, nil)
		s.VaR[c] = v
		s.TVaR[c] = tailMean(sorted, v)
	}
	return s, nil
}

// tailMean averages the values of the ascending-sorted sample that are
// >= threshold.
func tailMean(sorted []float64, threshold float64) float64 {
	i := sort.SearchFloat64s(sorted, threshold)
	if i >= len(sorted) {
		// The quantile never exceeds the sample maximum, so the tail
		// cannot be empty; guard against float noise anyway.
		i = len(sorted) - 1
	}
	return stat.Mean(sorted[i:], nil)
}
