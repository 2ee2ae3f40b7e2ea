package depot

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

func bayTrain(number string, priority float64) core.Train {
	t := core.Train{TrainStatus: core.StatusBay, BayPriority: priority}
	t.TrainNumber = number
	return t
}

func serviceTrain(number string, priority float64) core.Train {
	t := bayTrain(number, priority)
	t.TrainStatus = core.StatusService
	return t
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()
	if layout.Capacity() != 15 {
		t.Fatalf("expected 15 bays, got %d", layout.Capacity())
	}
	first, last := layout.Bays[0], layout.Bays[14]
	if first.Number != 1 || first.Position != (core.Point{X: 100, Y: 100}) {
		t.Fatalf("unexpected first bay %+v", first)
	}
	if last.Number != 15 || last.Position != (core.Point{X: 500, Y: 300}) {
		t.Fatalf("unexpected last bay %+v", last)
	}
}

func TestDistanceToExit(t *testing.T) {
	exit := core.Point{X: 600, Y: 200}
	tests := []struct {
		from core.Point
		want int
	}{
		{core.Point{X: 100, Y: 100}, 510},
		{core.Point{X: 500, Y: 200}, 100},
		{core.Point{X: 300, Y: 300}, 316},
	}
	for _, tt := range tests {
		if got := DistanceToExit(tt.from, exit); got != tt.want {
			t.Errorf("DistanceToExit(%+v) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestAllocateFillsBaysInPriorityOrder(t *testing.T) {
	fleet := []core.Train{
		bayTrain("01", 800),
		serviceTrain("02", 5000),
		bayTrain("03", 1200),
		bayTrain("04", 950),
	}

	alloc := Allocate(fleet, DefaultLayout())
	if len(alloc.Assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(alloc.Assignments))
	}
	if len(alloc.Unassigned) != 0 {
		t.Fatalf("expected no unassigned trains, got %d", len(alloc.Unassigned))
	}

	wantOrder := []string{"03", "04", "01"}
	for i, a := range alloc.Assignments {
		if a.Train.TrainNumber != wantOrder[i] {
			t.Errorf("rank %d: expected %s, got %s", i+1, wantOrder[i], a.Train.TrainNumber)
		}
		if a.BayNumber != i+1 {
			t.Errorf("rank %d: expected bay %d, got %d", i+1, i+1, a.BayNumber)
		}
	}

	first := alloc.Assignments[0]
	if first.DistanceToExit != 510 {
		t.Errorf("expected bay 1 distance 510, got %d", first.DistanceToExit)
	}
	wantPath := []string{"Bay 1", "Maintenance Track", "Main Line", "Exit Point"}
	if !reflect.DeepEqual(first.Path, wantPath) {
		t.Errorf("expected path %v, got %v", wantPath, first.Path)
	}
}

func TestAllocateCapsAtCapacity(t *testing.T) {
	fleet := make([]core.Train, 0, 20)
	for i := 0; i < 20; i++ {
		fleet = append(fleet, bayTrain(fmt.Sprintf("%02d", i+1), float64(i)))
	}

	layout := DefaultLayout()
	alloc := Allocate(fleet, layout)
	if len(alloc.Assignments) != layout.Capacity() {
		t.Fatalf("expected %d assignments, got %d", layout.Capacity(), len(alloc.Assignments))
	}
	if len(alloc.Unassigned) != 5 {
		t.Fatalf("expected 5 unassigned, got %d", len(alloc.Unassigned))
	}

	bays := make(map[int]bool)
	trains := make(map[string]bool)
	for _, a := range alloc.Assignments {
		if bays[a.BayNumber] {
			t.Fatalf("bay %d assigned twice", a.BayNumber)
		}
		if trains[a.Train.TrainNumber] {
			t.Fatalf("train %s assigned twice", a.Train.TrainNumber)
		}
		bays[a.BayNumber] = true
		trains[a.Train.TrainNumber] = true
	}

	// Lowest priorities are left over
	if alloc.Unassigned[0].TrainNumber != "05" || alloc.Unassigned[4].TrainNumber != "01" {
		t.Fatalf("unexpected unassigned trains: %s..%s", alloc.Unassigned[0].TrainNumber, alloc.Unassigned[4].TrainNumber)
	}
}

func TestAllocateIsStableForEqualPriority(t *testing.T) {
	fleet := []core.Train{
		bayTrain("07", 500),
		bayTrain("02", 900),
		bayTrain("05", 500),
		bayTrain("01", 500),
	}

	alloc := Allocate(fleet, DefaultLayout())
	got := make([]string, 0, len(alloc.Assignments))
	for _, a := range alloc.Assignments {
		got = append(got, a.Train.TrainNumber)
	}
	want := []string{"02", "07", "05", "01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAllocateEmptyAndServiceOnlyFleets(t *testing.T) {
	for name, fleet := range map[string][]core.Train{
		"empty":        nil,
		"service only": {serviceTrain("01", 900), serviceTrain("02", 100)},
	} {
		alloc := Allocate(fleet, DefaultLayout())
		if len(alloc.Assignments) != 0 || len(alloc.Unassigned) != 0 {
			t.Errorf("%s: expected no assignments, got %d/%d", name, len(alloc.Assignments), len(alloc.Unassigned))
		}
	}
}

func TestAllocateDoesNotMutateFleet(t *testing.T) {
	fleet := []core.Train{bayTrain("01", 100), bayTrain("02", 900)}
	Allocate(fleet, DefaultLayout())
	if fleet[0].TrainNumber != "01" || fleet[1].TrainNumber != "02" {
		t.Fatal("expected input fleet order to be untouched")
	}
}
