package scoring

import (
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// Derive fills every derived field of a train in dependency order:
// risk, composite score, statuses, then bay priority.
// It is a pure function of its inputs.
func Derive(attrs core.TrainAttributes, now time.Time, params Params) core.Train {
	t := core.Train{TrainAttributes: attrs}

	t.RiskScore = RiskScore(attrs, now, params)
	t.RiskLevel = RiskLevelFor(t.RiskScore)
	t.MCDAScore = MCDAScore(t.RiskScore, attrs.CleanlinessScore, attrs.Mileage, params)
	t.BrandingStatus = BrandingStatusFor(attrs.ExposureHoursCompleted, attrs.ExposureHoursRequired)
	t.TrainStatus = ClassifyTrainStatus(StatusInputs{
		RiskLevel:       t.RiskLevel,
		JobCardStatus:   attrs.JobCardStatus,
		MCDAScore:       t.MCDAScore,
		BrandingStatus:  t.BrandingStatus,
		DailyCrowdCount: attrs.DailyCrowdCount,
	})
	t.BayPriority = BayPriority(t, now, params)

	return t
}

// DeriveFleet derives every train, preserving input order
func DeriveFleet(attrs []core.TrainAttributes, now time.Time, params Params) []core.Train {
	trains := make([]core.Train, len(attrs))
	for i, a := range attrs {
		trains[i] = Derive(a, now, params)
	}
	return trains
}
