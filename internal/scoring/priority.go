package scoring

import (
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

var riskLevelPriority = map[core.RiskLevel]float64{
	core.RiskCritical: 1000,
	core.RiskHigh:     750,
	core.RiskMedium:   500,
	core.RiskLow:      250,
}

var jobCardPriority = map[core.JobCardStatus]float64{
	core.JobCardOpen:      100,
	core.JobCardPending:   80,
	core.JobCardAppointed: 60,
	core.JobCardVerified:  40,
	core.JobCardClosed:    20,
}

var expiryUrgencyStages = []stage{
	{limit: 0, points: 100},
	{limit: 30, points: 75},
	{limit: 90, points: 50},
	{limit: 180, points: 25},
}

// MileagePriorityScale converts the mileage ratio into priority points
const MileagePriorityScale = 100.0

// ExpiryUrgency stages the days until expiry for bay ordering
func ExpiryUrgency(daysUntilExpiry int) float64 {
	for _, s := range expiryUrgencyStages {
		if daysUntilExpiry <= s.limit {
			return s.points
		}
	}
	return 0
}

// BayPriority orders trains competing for maintenance bays; higher goes first.
func BayPriority(t core.Train, now time.Time, params Params) float64 {
	return riskLevelPriority[t.RiskLevel] +
		jobCardPriority[t.JobCardStatus] +
		ExpiryUrgency(DaysUntil(t.ExpiryDate, now)) +
		params.Mileage.Ratio(float64(t.Mileage))*MileagePriorityScale
}
