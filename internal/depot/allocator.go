package depot

import (
	"math"
	"sort"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// ExitLabel terminates every display path
const ExitLabel = "Exit Point"

// Allocation is the result of one allocation run
type Allocation struct {
	Assignments []core.BayAssignment `json:"assignments"`

	// Bay-status trains that did not get a slot, in priority order
	Unassigned []core.Train `json:"unassigned"`
}

// BayCandidates returns the Bay-status trains of a fleet ordered by
// descending bay priority. Equal priorities keep their fleet order.
func BayCandidates(fleet []core.Train) []core.Train {
	candidates := make([]core.Train, 0, len(fleet))
	for _, t := range fleet {
		if t.TrainStatus == core.StatusBay {
			candidates = append(candidates, t)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BayPriority > candidates[j].BayPriority
	})
	return candidates
}

// Allocate assigns the highest-priority Bay trains to the layout's bays in
// the bays' listed order. It does not modify the fleet.
func Allocate(fleet []core.Train, layout Layout) Allocation {
	candidates := BayCandidates(fleet)

	n := len(candidates)
	if n > layout.Capacity() {
		n = layout.Capacity()
	}

	alloc := Allocation{
		Assignments: make([]core.BayAssignment, 0, n),
		Unassigned:  candidates[n:],
	}

	for i, train := range candidates[:n] {
		bay := layout.Bays[i]
		alloc.Assignments = append(alloc.Assignments, core.BayAssignment{
			Train:          train,
			BayNumber:      bay.Number,
			Position:       bay.Position,
			DistanceToExit: DistanceToExit(bay.Position, layout.Exit),
			Path:           layout.PathFrom(bay),
		})
	}

	return alloc
}

// DistanceToExit is the straight-line distance from a bay to the exit,
// rounded to the nearest integer
func DistanceToExit(from, exit core.Point) int {
	return int(math.Round(math.Hypot(exit.X-from.X, exit.Y-from.Y)))
}

// PathFrom returns the symbolic route from a bay to the exit
func (l Layout) PathFrom(bay Bay) []string {
	path := make([]string, 0, len(l.Tracks)+2)
	path = append(path, bay.Label())
	path = append(path, l.Tracks...)
	return append(path, ExitLabel)
}
