package scoring

import (
	"math"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/fleet"
)

// NeutralRatio is used when a normalization range is degenerate (min == max)
const NeutralRatio = 0.5

// Range is a closed interval used to normalize an attribute
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Ratio returns the position of v within the range, clamped to [0, 1].
func (r Range) Ratio(v float64) float64 {
	span := r.Max - r.Min
	if span == 0 || math.IsNaN(span) {
		return NeutralRatio
	}
	ratio := (v - r.Min) / span
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Params holds the fleet-wide normalization ranges
type Params struct {
	Mileage     Range `json:"mileage"`
	Cleanliness Range `json:"cleanliness"`
}

// DefaultParams returns the ranges matching the generator
func DefaultParams() Params {
	return Params{
		Mileage:     Range{Min: fleet.MinMileage, Max: fleet.MaxMileage},
		Cleanliness: Range{Min: fleet.MinCleanliness, Max: fleet.MaxCleanliness},
	}
}

// DaysUntil returns whole days from now until t, rounded up.
// Negative values mean t has passed.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// DaysSince returns whole days elapsed from t until now, rounded up and
// clamped to zero for instants in the future.
func DaysSince(t, now time.Time) int {
	days := int(math.Ceil(now.Sub(t).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
