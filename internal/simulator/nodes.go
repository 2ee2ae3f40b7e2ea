package simulator

import (
	"fmt"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/analytics"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/depot"
)

// FleetNodes returns the OPC UA node definitions for the fleet summary namespace
func FleetNodes() []core.NodeDefinition {
	return []core.NodeDefinition{
		{Name: "FleetId", DisplayName: "Fleet ID", Description: "Generation run ID", DataType: core.DataTypeString, Unit: "", InitialValue: ""},
		{Name: "GeneratedAt", DisplayName: "Generated At", Description: "Reference instant of the run", DataType: core.DataTypeDateTime, Unit: "", InitialValue: time.Time{}},
		{Name: "TrainCount", DisplayName: "Train Count", Description: "Trains in the fleet", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "ServiceCount", DisplayName: "Service Count", Description: "Trains cleared for service", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "BayCount", DisplayName: "Bay Count", Description: "Trains held in the depot", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "CriticalCount", DisplayName: "Critical Count", Description: "Trains at Critical risk", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "HighCount", DisplayName: "High Count", Description: "Trains at High risk", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "MediumCount", DisplayName: "Medium Count", Description: "Trains at Medium risk", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "LowCount", DisplayName: "Low Count", Description: "Trains at Low risk", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "AverageRiskScore", DisplayName: "Average Risk Score", Description: "Mean risk score 0-100", DataType: core.DataTypeDouble, Unit: "", InitialValue: 0.0},
		{Name: "AverageMCDAScore", DisplayName: "Average MCDA Score", Description: "Mean composite score 0-100", DataType: core.DataTypeDouble, Unit: "", InitialValue: 0.0},
		{Name: "BrandingAtRisk", DisplayName: "Branding At Risk", Description: "Contracts behind schedule", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "DailyPassengers", DisplayName: "Daily Passengers", Description: "Daily riders across the fleet", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
	}
}

// FleetValues returns the fleet summary node values for a snapshot
func FleetValues(snap FleetSnapshot) map[string]interface{} {
	service, bay := snap.Counts()
	dist := analytics.DistributeRisk(snap.Trains)
	avg := analytics.AverageScores(snap.Trains)
	load := analytics.SummarizePassengerLoad(snap.Trains)
	branding := analytics.ReportBranding(snap.Trains)

	return map[string]interface{}{
		"FleetId":          snap.ID,
		"GeneratedAt":      snap.GeneratedAt.UTC(),
		"TrainCount":       int32(len(snap.Trains)),
		"ServiceCount":     int32(service),
		"BayCount":         int32(bay),
		"CriticalCount":    int32(dist.Critical),
		"HighCount":        int32(dist.High),
		"MediumCount":      int32(dist.Medium),
		"LowCount":         int32(dist.Low),
		"AverageRiskScore": avg.RiskScore,
		"AverageMCDAScore": avg.MCDAScore,
		"BrandingAtRisk":   int32(branding.AtRisk),
		"DailyPassengers":  int32(load.Total),
	}
}

func bayNodePrefix(number int) string {
	return fmt.Sprintf("Bay%02d", number)
}

// DepotNodes returns the OPC UA node definitions for bay occupancy
func DepotNodes(layout depot.Layout) []core.NodeDefinition {
	nodes := []core.NodeDefinition{
		{Name: "Capacity", DisplayName: "Capacity", Description: "Number of bays", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(layout.Capacity())},
		{Name: "AssignedBays", DisplayName: "Assigned Bays", Description: "Occupied bays", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		{Name: "UnassignedTrains", DisplayName: "Unassigned Trains", Description: "Bay trains without a slot", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
	}
	for _, bay := range layout.Bays {
		prefix := bayNodePrefix(bay.Number)
		nodes = append(nodes,
			core.NodeDefinition{Name: prefix + ".TrainNumber", DisplayName: bay.Label() + " Train", Description: "Train parked in the bay", DataType: core.DataTypeString, Unit: "", InitialValue: ""},
			core.NodeDefinition{Name: prefix + ".Priority", DisplayName: bay.Label() + " Priority", Description: "Bay priority of the parked train", DataType: core.DataTypeDouble, Unit: "", InitialValue: 0.0},
			core.NodeDefinition{Name: prefix + ".DistanceToExit", DisplayName: bay.Label() + " Distance", Description: "Straight line distance to the exit", DataType: core.DataTypeInt32, Unit: "", InitialValue: int32(0)},
		)
	}
	return nodes
}

// DepotValues returns bay occupancy node values. Empty bays report an empty
// train number and zero priority.
func DepotValues(snap FleetSnapshot, layout depot.Layout) map[string]interface{} {
	values := map[string]interface{}{
		"Capacity":         int32(layout.Capacity()),
		"AssignedBays":     int32(len(snap.Assignments)),
		"UnassignedTrains": int32(len(snap.Unassigned)),
	}

	occupied := make(map[int]core.BayAssignment, len(snap.Assignments))
	for _, a := range snap.Assignments {
		occupied[a.BayNumber] = a
	}

	for _, bay := range layout.Bays {
		prefix := bayNodePrefix(bay.Number)
		a, ok := occupied[bay.Number]
		if !ok {
			values[prefix+".TrainNumber"] = ""
			values[prefix+".Priority"] = 0.0
			values[prefix+".DistanceToExit"] = int32(depot.DistanceToExit(bay.Position, layout.Exit))
			continue
		}
		values[prefix+".TrainNumber"] = a.Train.TrainNumber
		values[prefix+".Priority"] = a.Train.BayPriority
		values[prefix+".DistanceToExit"] = int32(a.DistanceToExit)
	}
	return values
}
