package scoring

import (
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// BrandingStatusFor reports whether the exposure quota has been met
func BrandingStatusFor(completed, required int) core.BrandingStatus {
	if completed < required {
		return core.BrandingAtRisk
	}
	return core.BrandingOnTrack
}

// StatusInputs are the derived and raw values the status rules look at
type StatusInputs struct {
	RiskLevel       core.RiskLevel
	JobCardStatus   core.JobCardStatus
	MCDAScore       float64
	BrandingStatus  core.BrandingStatus
	DailyCrowdCount int
}

// StatusRule is one entry of the Service/Bay decision list
type StatusRule struct {
	Name    string
	Matches func(in StatusInputs) bool
	Outcome core.TrainStatus
}

// StatusRules is evaluated in order; the first match decides.
var StatusRules = []StatusRule{
	{
		Name: "high-or-critical-risk",
		Matches: func(in StatusInputs) bool {
			return in.RiskLevel == core.RiskCritical || in.RiskLevel == core.RiskHigh
		},
		Outcome: core.StatusBay,
	},
	{
		Name: "open-or-pending-jobcard",
		Matches: func(in StatusInputs) bool {
			return in.JobCardStatus == core.JobCardOpen || in.JobCardStatus == core.JobCardPending
		},
		Outcome: core.StatusBay,
	},
	{
		Name: "branding-exposure-needed",
		Matches: func(in StatusInputs) bool {
			return in.MCDAScore > 70 && in.BrandingStatus == core.BrandingAtRisk && in.DailyCrowdCount > 2500
		},
		Outcome: core.StatusService,
	},
	{
		Name: "high-demand",
		Matches: func(in StatusInputs) bool {
			return in.MCDAScore > 60 && in.DailyCrowdCount > 3000
		},
		Outcome: core.StatusService,
	},
	{
		Name: "low-or-medium-risk",
		Matches: func(in StatusInputs) bool {
			return in.RiskLevel == core.RiskLow || in.RiskLevel == core.RiskMedium
		},
		Outcome: core.StatusService,
	},
	{
		Name:    "default",
		Matches: func(StatusInputs) bool { return true },
		Outcome: core.StatusBay,
	},
}

// MatchStatusRule returns the outcome and the name of the first matching rule
func MatchStatusRule(in StatusInputs) (core.TrainStatus, string) {
	for _, rule := range StatusRules {
		if rule.Matches(in) {
			return rule.Outcome, rule.Name
		}
	}
	return core.StatusBay, "default"
}

// ClassifyTrainStatus assigns a train to Service or Bay
func ClassifyTrainStatus(in StatusInputs) core.TrainStatus {
	status, _ := MatchStatusRule(in)
	return status
}
