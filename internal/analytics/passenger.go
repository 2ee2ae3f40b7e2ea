package analytics

import (
	"sort"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// LoadCategory buckets a daily crowd count
type LoadCategory string

const (
	LoadVeryHigh LoadCategory = "Very High"
	LoadHigh     LoadCategory = "High"
	LoadMedium   LoadCategory = "Medium"
	LoadLow      LoadCategory = "Low"
)

// CategorizeLoad maps a daily crowd count to its load category
func CategorizeLoad(count int) LoadCategory {
	switch {
	case count >= 4000:
		return LoadVeryHigh
	case count >= 3000:
		return LoadHigh
	case count >= 2000:
		return LoadMedium
	default:
		return LoadLow
	}
}

// PassengerLoad summarizes ridership across the fleet
type PassengerLoad struct {
	Total   int     `json:"total"`
	Average float64 `json:"average"`
	Highest int     `json:"highest"`
	Lowest  int     `json:"lowest"`
}

// SummarizePassengerLoad aggregates daily crowd counts. All fields are zero
// for an empty fleet.
func SummarizePassengerLoad(trains []core.Train) PassengerLoad {
	if len(trains) == 0 {
		return PassengerLoad{}
	}

	load := PassengerLoad{
		Highest: trains[0].DailyCrowdCount,
		Lowest:  trains[0].DailyCrowdCount,
	}
	for _, t := range trains {
		load.Total += t.DailyCrowdCount
		if t.DailyCrowdCount > load.Highest {
			load.Highest = t.DailyCrowdCount
		}
		if t.DailyCrowdCount < load.Lowest {
			load.Lowest = t.DailyCrowdCount
		}
	}
	load.Average = float64(load.Total) / float64(len(trains))
	return load
}

// RankByLoad returns a copy of the fleet ordered by descending crowd count
func RankByLoad(trains []core.Train) []core.Train {
	ranked := make([]core.Train, len(trains))
	copy(ranked, trains)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DailyCrowdCount > ranked[j].DailyCrowdCount
	})
	return ranked
}
