package api

import (
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/analytics"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// StatusResponse is returned by GET /api/status and POST /api/generate
type StatusResponse struct {
	SimulatorName string                     `json:"simulatorName"`
	HasFleet      bool                       `json:"hasFleet"`
	FleetID       string                     `json:"fleetId,omitempty"`
	GeneratedAt   *time.Time                 `json:"generatedAt,omitempty"`
	Runs          int                        `json:"runs"`
	TrainCount    int                        `json:"trainCount"`
	Service       int                        `json:"service"`
	Bay           int                        `json:"bay"`
	AssignedBays  int                        `json:"assignedBays"`
	Unassigned    int                        `json:"unassigned"`
	BayCapacity   int                        `json:"bayCapacity"`
	Risk          analytics.RiskDistribution `json:"risk"`
	Averages      analytics.Averages         `json:"averages"`
}

// TrainListResponse is returned by GET /api/trains
type TrainListResponse struct {
	Trains []core.Train `json:"trains"`
}

// AssignmentListResponse is returned by GET /api/assignments
type AssignmentListResponse struct {
	Capacity    int                  `json:"capacity"`
	Exit        core.Point           `json:"exit"`
	Assignments []core.BayAssignment `json:"assignments"`
	Unassigned  []core.Train         `json:"unassigned"`
}

// RiskAnalyticsResponse is returned by GET /api/analytics/risk
type RiskAnalyticsResponse struct {
	Distribution analytics.RiskDistribution `json:"distribution"`
	Averages     analytics.Averages         `json:"averages"`
	Ranking      []core.Train               `json:"ranking"`
}

// MCDAAnalyticsResponse is returned by GET /api/analytics/mcda
type MCDAAnalyticsResponse struct {
	Averages analytics.Averages `json:"averages"`
	Ranking  []core.Train       `json:"ranking"`
}

// PassengerLoadResponse is returned by GET /api/analytics/passenger-load
type PassengerLoadResponse struct {
	Summary analytics.PassengerLoad `json:"summary"`
	Ranking []LoadEntry             `json:"ranking"`
}

// LoadEntry is one train in the passenger load ranking
type LoadEntry struct {
	TrainNumber     string                 `json:"trainNumber"`
	TrainName       string                 `json:"trainName"`
	DailyCrowdCount int                    `json:"dailyCrowdCount"`
	Category        analytics.LoadCategory `json:"category"`
	TrainStatus     core.TrainStatus       `json:"trainStatus"`
}

// NamespaceInfo describes one OPC UA namespace published by the simulator
type NamespaceInfo struct {
	Namespace uint16     `json:"namespace"`
	Folder    string     `json:"folder"`
	Nodes     []NodeInfo `json:"nodes"`
}

// NodeInfo describes an OPC UA node and its current value
type NodeInfo struct {
	Name        string      `json:"name"`
	NodeID      string      `json:"nodeId"`
	DataType    string      `json:"dataType"`
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description,omitempty"`
	Value       interface{} `json:"value"`
}

// ConfigResponse is returned by GET /api/config
type ConfigResponse struct {
	FleetSize     int    `json:"fleetSize"`
	GenerateDelay string `json:"generateDelay"`
}

// ConfigUpdateRequest is used for POST /api/config
type ConfigUpdateRequest struct {
	FleetSize     *int    `json:"fleetSize,omitempty"`
	GenerateDelay *string `json:"generateDelay,omitempty"` // Go duration, e.g. "500ms"
}
