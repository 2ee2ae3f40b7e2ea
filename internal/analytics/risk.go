package analytics

import (
	"sort"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// RiskDistribution counts trains per risk level
type RiskDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the number of trains counted
func (d RiskDistribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// DistributeRisk counts the fleet per risk level
func DistributeRisk(trains []core.Train) RiskDistribution {
	var d RiskDistribution
	for _, t := range trains {
		switch t.RiskLevel {
		case core.RiskCritical:
			d.Critical++
		case core.RiskHigh:
			d.High++
		case core.RiskMedium:
			d.Medium++
		case core.RiskLow:
			d.Low++
		}
	}
	return d
}

// RankByRisk returns a copy of the fleet ordered by descending risk score
func RankByRisk(trains []core.Train) []core.Train {
	ranked := make([]core.Train, len(trains))
	copy(ranked, trains)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RiskScore > ranked[j].RiskScore
	})
	return ranked
}

// RankByMCDA returns a copy of the fleet ordered by descending composite score
func RankByMCDA(trains []core.Train) []core.Train {
	ranked := make([]core.Train, len(trains))
	copy(ranked, trains)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MCDAScore > ranked[j].MCDAScore
	})
	return ranked
}

// Averages holds fleet-wide mean scores
type Averages struct {
	RiskScore float64 `json:"riskScore"`
	MCDAScore float64 `json:"mcdaScore"`
}

// AverageScores returns mean risk and composite scores; zero for an empty fleet
func AverageScores(trains []core.Train) Averages {
	if len(trains) == 0 {
		return Averages{}
	}
	var a Averages
	for _, t := range trains {
		a.RiskScore += t.RiskScore
		a.MCDAScore += t.MCDAScore
	}
	n := float64(len(trains))
	a.RiskScore /= n
	a.MCDAScore /= n
	return a
}
