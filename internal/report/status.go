package report

import (
	"math"

	"synapse-go/internal/types"
)

// Direction tells Classify which side of the target is good.
type Direction int

const (
	// HigherIsBetter: reaching or passing the target is ideal.
	HigherIsBetter Direction = iota
	// LowerIsBetter: staying at or under the target is ideal.
	LowerIsBetter
	// ClosestIsBetter: any distance from the target counts against.
	ClosestIsBetter
)

// Bands are the upper bounds of relative deviation for each status.
// Anything beyond Warning is poor.
type Bands struct {
	Excellent float64
	Good      float64
	Warning   float64
}

var DefaultBands = Bands{Excellent: 0.05, Good: 0.20, Warning: 0.40}

// Deviation is the distance of value from target on the bad side, relative
// to max(|target|, 1) so a zero target stays defined.
func Deviation(value, target float64, dir Direction) float64 {
	var d float64
	switch dir {
	case HigherIsBetter:
		d = target - value
	case LowerIsBetter:
		d = value - target
	default:
		d = math.Abs(value - target)
	}
	if d <= 0 || math.IsNaN(d) {
		return 0
	}
	return d / math.Max(math.Abs(target), 1)
}

// Classify is the one status function used for every metric card.
func Classify(value, target float64, dir Direction, b Bands) types.Status {
	dev := Deviation(value, target, dir)
	switch {
	case dev <= b.Excellent:
		return types.StatusExcellent
	case dev <= b.Good:
		return types.StatusGood
	case dev <= b.Warning:
		return types.StatusWarning
	default:
		return types.StatusPoor
	}
}
