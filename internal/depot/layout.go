package depot

import (
	"fmt"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// Bay is a physical maintenance slot in the depot
type Bay struct {
	Number   int        `json:"number"`
	Position core.Point `json:"position"`
}

// Label returns the display name of the bay
func (b Bay) Label() string {
	return fmt.Sprintf("Bay %d", b.Number)
}

// Layout is the fixed depot map. Bays are filled in the listed order.
type Layout struct {
	Bays []Bay      `json:"bays"`
	Exit core.Point `json:"exit"`

	// Track labels between a bay and the exit, used for the display path
	Tracks []string `json:"tracks"`
}

// DefaultLayout returns the 15-bay depot: three rows of five bays with the
// exit to the east of the middle row.
func DefaultLayout() Layout {
	bays := make([]Bay, 0, 15)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			bays = append(bays, Bay{
				Number:   row*5 + col + 1,
				Position: core.Point{X: float64(100 * (col + 1)), Y: float64(100 * (row + 1))},
			})
		}
	}

	return Layout{
		Bays:   bays,
		Exit:   core.Point{X: 600, Y: 200},
		Tracks: []string{"Maintenance Track", "Main Line"},
	}
}

// Capacity returns the number of bay slots
func (l Layout) Capacity() int {
	return len(l.Bays)
}
