package analytics

import (
	"math"
	"sort"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// Induction plan parameters
const (
	InductionSlots = 15

	// Composite scores within the same band are ordered by passenger load
	InductionScoreBand = 5.0
)

// InductionStatus is the readiness of a candidate for next-day service
type InductionStatus string

const (
	InductionMaintenanceRequired InductionStatus = "Maintenance Required"
	InductionPriorityCheck       InductionStatus = "Priority Check"
	InductionReady               InductionStatus = "Ready for Service"
)

// InductionStatusFor derives a candidate's readiness from its risk level
func InductionStatusFor(level core.RiskLevel) InductionStatus {
	switch level {
	case core.RiskCritical:
		return InductionMaintenanceRequired
	case core.RiskHigh:
		return InductionPriorityCheck
	default:
		return InductionReady
	}
}

// InductionCandidate is one train selected for the induction plan
type InductionCandidate struct {
	Rank   int             `json:"rank"`
	Train  core.Train      `json:"train"`
	Status InductionStatus `json:"status"`
}

// InductionPlan is the ranked selection of trains for next-day service
type InductionPlan struct {
	Candidates      []InductionCandidate `json:"candidates"`
	Serviceable     int                  `json:"serviceable"`
	Maintenance     int                  `json:"maintenance"`
	TotalCapacity   int                  `json:"totalCapacity"`
	AverageCapacity float64              `json:"averageCapacity"`
}

// PlanInduction picks up to slots trains ordered by composite score band,
// then passenger load, then exact composite score. Critical trains stay in
// the plan flagged for maintenance and are excluded from capacity totals.
func PlanInduction(trains []core.Train, slots int) InductionPlan {
	ranked := make([]core.Train, len(trains))
	copy(ranked, trains)
	sort.SliceStable(ranked, func(i, j int) bool {
		bi, bj := scoreBand(ranked[i].MCDAScore), scoreBand(ranked[j].MCDAScore)
		if bi != bj {
			return bi > bj
		}
		if ranked[i].DailyCrowdCount != ranked[j].DailyCrowdCount {
			return ranked[i].DailyCrowdCount > ranked[j].DailyCrowdCount
		}
		return ranked[i].MCDAScore > ranked[j].MCDAScore
	})

	if slots < 0 {
		slots = 0
	}
	if len(ranked) > slots {
		ranked = ranked[:slots]
	}

	plan := InductionPlan{
		Candidates: make([]InductionCandidate, 0, len(ranked)),
	}
	for i, t := range ranked {
		status := InductionStatusFor(t.RiskLevel)
		plan.Candidates = append(plan.Candidates, InductionCandidate{
			Rank:   i + 1,
			Train:  t,
			Status: status,
		})

		if status == InductionMaintenanceRequired {
			plan.Maintenance++
			continue
		}
		plan.Serviceable++
		plan.TotalCapacity += t.DailyCrowdCount
	}

	if plan.Serviceable > 0 {
		plan.AverageCapacity = float64(plan.TotalCapacity) / float64(plan.Serviceable)
	}
	return plan
}

func scoreBand(score float64) int {
	return int(math.Floor(score / InductionScoreBand))
}
