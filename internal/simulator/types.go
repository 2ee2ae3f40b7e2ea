package simulator

import (
	"errors"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

var (
	// ErrNoFleet is returned by queries issued before the first generation run
	ErrNoFleet = errors.New("no fleet generated yet")

	// ErrTrainNotFound is returned when a train number is not in the current fleet
	ErrTrainNotFound = errors.New("train not found")
)

// FleetSnapshot is the complete output of one generation run.
// A snapshot is replaced as a whole and never updated in place.
type FleetSnapshot struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Trains      []core.Train         `json:"trains"`
	Assignments []core.BayAssignment `json:"assignments"`
	Unassigned  []core.Train         `json:"unassigned"` // Bay trains that did not fit in the depot
}

// Copy returns a deep copy so callers cannot alter the stored snapshot
func (s FleetSnapshot) Copy() FleetSnapshot {
	out := s
	out.Trains = make([]core.Train, len(s.Trains))
	copy(out.Trains, s.Trains)
	out.Unassigned = make([]core.Train, len(s.Unassigned))
	copy(out.Unassigned, s.Unassigned)
	out.Assignments = make([]core.BayAssignment, len(s.Assignments))
	for i, a := range s.Assignments {
		a.Path = append([]string(nil), a.Path...)
		out.Assignments[i] = a
	}
	return out
}

// Counts returns the Service/Bay split of the snapshot
func (s FleetSnapshot) Counts() (service, bay int) {
	for _, t := range s.Trains {
		if t.TrainStatus == core.StatusService {
			service++
		} else {
			bay++
		}
	}
	return service, bay
}

// FleetTrain is a single train with its bay assignment, if it has one
type FleetTrain struct {
	core.Train
	Assignment *core.BayAssignment `json:"assignment,omitempty"`
}
