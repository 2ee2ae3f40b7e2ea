package analytics

import (
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// ServiceBaySummary describes the Service/Bay split of the fleet
type ServiceBaySummary struct {
	Service               int `json:"service"`
	Bay                   int `json:"bay"`
	ServiceCapacity       int `json:"serviceCapacity"`       // Daily riders carried by Service trains
	ServiceBrandingAtRisk int `json:"serviceBrandingAtRisk"` // Service trains still owing exposure hours
	AssignedBays          int `json:"assignedBays"`
	UnassignedBayTrains   int `json:"unassignedBayTrains"`
	CriticalInBays        int `json:"criticalInBays"`
}

// SummarizeServiceBay splits the fleet by operational status and relates the
// Bay side to the current bay assignments
func SummarizeServiceBay(trains []core.Train, assignments []core.BayAssignment) ServiceBaySummary {
	var s ServiceBaySummary
	for _, t := range trains {
		if t.TrainStatus == core.StatusService {
			s.Service++
			s.ServiceCapacity += t.DailyCrowdCount
			if t.BrandingStatus == core.BrandingAtRisk {
				s.ServiceBrandingAtRisk++
			}
			continue
		}
		s.Bay++
	}

	s.AssignedBays = len(assignments)
	if s.Bay > s.AssignedBays {
		s.UnassignedBayTrains = s.Bay - s.AssignedBays
	}
	for _, a := range assignments {
		if a.Train.RiskLevel == core.RiskCritical {
			s.CriticalInBays++
		}
	}
	return s
}
