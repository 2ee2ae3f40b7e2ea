package core

import (
	"time"
)

// JobCardStatus represents the maintenance workflow stage of a train
type JobCardStatus string

const (
	JobCardOpen      JobCardStatus = "Open"
	JobCardPending   JobCardStatus = "Pending"
	JobCardAppointed JobCardStatus = "Appointed"
	JobCardVerified  JobCardStatus = "Verified"
	JobCardClosed    JobCardStatus = "Closed"
)

// JobCardStatuses lists all job card states from most to least urgent
var JobCardStatuses = []JobCardStatus{
	JobCardOpen,
	JobCardPending,
	JobCardAppointed,
	JobCardVerified,
	JobCardClosed,
}

func (s JobCardStatus) String() string {
	return string(s)
}

// Urgency returns the position of the status in the workflow,
// 0 for Open (most urgent) up to 4 for Closed. Unknown values return -1.
func (s JobCardStatus) Urgency() int {
	for i, status := range JobCardStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// RiskLevel is the ordinal bucket of a risk score
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// RiskLevels lists the levels from most to least severe (display order)
var RiskLevels = []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow}

func (l RiskLevel) String() string {
	return string(l)
}

// BrandingStatus tells whether an advertising contract has met its hour quota
type BrandingStatus string

const (
	BrandingAtRisk  BrandingStatus = "At Risk"
	BrandingOnTrack BrandingStatus = "On Track"
)

func (b BrandingStatus) String() string {
	return string(b)
}

// TrainStatus is the operational assignment of a train
type TrainStatus string

const (
	StatusService TrainStatus = "Service"
	StatusBay     TrainStatus = "Bay"
)

func (s TrainStatus) String() string {
	return string(s)
}

// TrainAttributes holds the raw, generated fields of a train.
// Validation tags mirror the generator ranges.
type TrainAttributes struct {
	TrainNumber        string        `json:"trainNumber" validate:"required"`
	TrainName          string        `json:"trainName" validate:"required"`
	IssueDate          time.Time     `json:"issueDate" validate:"required"`
	ExpiryDate         time.Time     `json:"expiryDate" validate:"required,gtfield=IssueDate"`
	LastInspectionDate time.Time     `json:"lastInspectionDate" validate:"required"`
	JobCardStatus      JobCardStatus `json:"jobcardStatus" validate:"oneof=Open Pending Appointed Verified Closed"`
	CleanlinessScore   int           `json:"cleanlinessScore" validate:"min=40,max=100"`
	Mileage            int           `json:"mileage" validate:"min=5000,max=200000"`
	DailyCrowdCount    int           `json:"dailyCrowdCount" validate:"min=500,max=5000"`

	// Branding contract
	BrandName              string `json:"brandName" validate:"required"`
	ExposureHoursRequired  int    `json:"exposureHoursRequired" validate:"min=100,max=500"`
	ExposureHoursCompleted int    `json:"exposureHoursCompleted" validate:"min=0,max=300"`
}

// Train is a finalized train record: raw attributes plus derived scores.
// Records are rebuilt wholesale on every generation run and never mutated.
type Train struct {
	TrainAttributes

	RiskScore      float64        `json:"riskScore"`
	RiskLevel      RiskLevel      `json:"riskLevel"`
	MCDAScore      float64        `json:"mcdaScore"`
	BrandingStatus BrandingStatus `json:"brandingStatus"`
	TrainStatus    TrainStatus    `json:"trainStatus"`
	BayPriority    float64        `json:"bayPriority"`
}

// Point is a position on the depot map
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BayAssignment maps a Bay-status train to a physical bay slot
type BayAssignment struct {
	Train          Train    `json:"train"`
	BayNumber      int      `json:"bayNumber"`
	Position       Point    `json:"position"`
	DistanceToExit int      `json:"distanceToExit"` // Straight line, rounded
	Path           []string `json:"path"`
}
