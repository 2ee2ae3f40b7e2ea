package scoring

import (
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// MCDA weights. The composite is on a 0-100 scale.
const (
	CleanlinessWeight = 0.3
	MileageWeight     = 0.4
	RiskWeight        = 0.3

	// MCDAMax is the ceiling every MCDA consumer is calibrated to
	MCDAMax = 100.0
)

// MCDACriteria holds the three criteria normalized to 0-100, higher is healthier
type MCDACriteria struct {
	Cleanliness float64 `json:"cleanliness"`
	Mileage     float64 `json:"mileage"`
	Risk        float64 `json:"risk"`
}

// NormalizeCriteria puts cleanliness, mileage wear and risk on a common scale.
// Mileage and risk are inverted so that less wear and less risk score higher.
func NormalizeCriteria(riskScore float64, cleanliness, mileage int, params Params) MCDACriteria {
	return MCDACriteria{
		Cleanliness: params.Cleanliness.Ratio(float64(cleanliness)) * 100,
		Mileage:     100 - params.Mileage.Ratio(float64(mileage))*100,
		Risk:        100 - core.Clamp(riskScore, 0, 100),
	}
}

// Score combines the normalized criteria into the weighted composite
func (c MCDACriteria) Score() float64 {
	return CleanlinessWeight*c.Cleanliness + MileageWeight*c.Mileage + RiskWeight*c.Risk
}

// MCDAScore returns the composite score in [0, 100]
func MCDAScore(riskScore float64, cleanliness, mileage int, params Params) float64 {
	return NormalizeCriteria(riskScore, cleanliness, mileage, params).Score()
}
