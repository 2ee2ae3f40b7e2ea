package scoring

import (
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// Risk budget per contribution; the budgets sum to 100
const (
	ExpiryRiskMax         = 40.0
	JobCardRiskMax        = 25.0
	MileageRiskMax        = 20.0
	InspectionRiskMax     = 10.0
	CertificateAgeRiskMax = 5.0
)

// Risk level lower bounds (inclusive)
const (
	CriticalThreshold = 76.0
	HighThreshold     = 51.0
	MediumThreshold   = 21.0
)

// stage awards points when a day count is at or below limit
type stage struct {
	limit  int
	points float64
}

// Days until certificate expiry
var expiryStages = []stage{
	{limit: 0, points: ExpiryRiskMax}, // expired
	{limit: 30, points: 30},
	{limit: 90, points: 20},
	{limit: 180, points: 10},
}

const expiryBaseRisk = 4.0

var jobCardRisk = map[core.JobCardStatus]float64{
	core.JobCardOpen:      JobCardRiskMax,
	core.JobCardPending:   20,
	core.JobCardAppointed: 10,
	core.JobCardVerified:  5,
	core.JobCardClosed:    0,
}

// overdue awards points when a day count exceeds after
type overdue struct {
	after  int
	points float64
}

// Days since last inspection
var inspectionStages = []overdue{
	{after: 180, points: InspectionRiskMax},
	{after: 90, points: 6},
	{after: 60, points: 3},
}

// Days since certificate issue
var certificateAgeStages = []overdue{
	{after: 5 * 365, points: CertificateAgeRiskMax},
	{after: 3 * 365, points: 3},
	{after: 2 * 365, points: 1},
}

// RiskBreakdown holds each risk contribution and the clamped total
type RiskBreakdown struct {
	Expiry         float64 `json:"expiry"`
	JobCard        float64 `json:"jobCard"`
	Mileage        float64 `json:"mileage"`
	Inspection     float64 `json:"inspection"`
	CertificateAge float64 `json:"certificateAge"`
	Total          float64 `json:"total"`
}

// AssessRisk computes every risk contribution against the reference instant now
func AssessRisk(attrs core.TrainAttributes, now time.Time, params Params) RiskBreakdown {
	rb := RiskBreakdown{
		Expiry:         ExpiryRisk(DaysUntil(attrs.ExpiryDate, now)),
		JobCard:        jobCardRisk[attrs.JobCardStatus],
		Mileage:        core.Clamp(params.Mileage.Ratio(float64(attrs.Mileage))*MileageRiskMax, 0, MileageRiskMax),
		Inspection:     overdueRisk(inspectionStages, DaysSince(attrs.LastInspectionDate, now)),
		CertificateAge: overdueRisk(certificateAgeStages, DaysSince(attrs.IssueDate, now)),
	}
	rb.Total = core.Clamp(rb.Expiry+rb.JobCard+rb.Mileage+rb.Inspection+rb.CertificateAge, 0, 100)
	return rb
}

// RiskScore returns the 0-100 risk score of a train
func RiskScore(attrs core.TrainAttributes, now time.Time, params Params) float64 {
	return AssessRisk(attrs, now, params).Total
}

// ExpiryRisk stages the days remaining until certificate expiry
func ExpiryRisk(daysUntilExpiry int) float64 {
	for _, s := range expiryStages {
		if daysUntilExpiry <= s.limit {
			return s.points
		}
	}
	return expiryBaseRisk
}

func overdueRisk(stages []overdue, days int) float64 {
	for _, s := range stages {
		if days > s.after {
			return s.points
		}
	}
	return 0
}

// RiskLevelFor maps a risk score onto its band. Lower bounds are inclusive.
func RiskLevelFor(score float64) core.RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return core.RiskCritical
	case score >= HighThreshold:
		return core.RiskHigh
	case score >= MediumThreshold:
		return core.RiskMedium
	default:
		return core.RiskLow
	}
}
