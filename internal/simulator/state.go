package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/config"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/depot"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/fleet"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/scoring"
)

// FleetSimulator runs the generate, score, classify and allocate pipeline
// and holds the latest fleet snapshot
type FleetSimulator struct {
	runtime *config.RuntimeConfig
	layout  depot.Layout
	params  scoring.Params
	clock   func() time.Time

	genMu     sync.Mutex // serializes generation runs; the generator is not goroutine safe
	generator *fleet.Generator

	mu      sync.RWMutex
	current *FleetSnapshot
	runs    int

	onGenerated func(snap FleetSnapshot, took time.Duration)
}

// NewFleetSimulator creates a simulator. A seed of 0 selects a time based seed.
func NewFleetSimulator(rc *config.RuntimeConfig, seed int64) *FleetSimulator {
	return &FleetSimulator{
		runtime:   rc,
		layout:    depot.DefaultLayout(),
		params:    scoring.DefaultParams(),
		clock:     time.Now,
		generator: fleet.NewGenerator(seed),
	}
}

// SetCallbacks sets the callback invoked after each successful generation run
func (fs *FleetSimulator) SetCallbacks(onGenerated func(snap FleetSnapshot, took time.Duration)) {
	fs.onGenerated = onGenerated
}

// SetClock replaces the reference clock used for date generation and scoring
func (fs *FleetSimulator) SetClock(clock func() time.Time) {
	fs.genMu.Lock()
	defer fs.genMu.Unlock()
	fs.clock = clock
}

// Layout returns the depot layout used for allocation
func (fs *FleetSimulator) Layout() depot.Layout {
	return fs.layout
}

// Generate waits for the configured generation delay, then builds a new
// fleet, scores it, allocates bays and swaps the stored snapshot. The
// previous snapshot stays visible until the swap. A cancelled context
// aborts the run and leaves the previous snapshot untouched.
func (fs *FleetSimulator) Generate(ctx context.Context) (FleetSnapshot, error) {
	settings := fs.runtime.Snapshot()

	if settings.GenerateDelay > 0 {
		timer := time.NewTimer(settings.GenerateDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return FleetSnapshot{}, ctx.Err()
		case <-timer.C:
		}
	}

	fs.genMu.Lock()
	defer fs.genMu.Unlock()

	if err := ctx.Err(); err != nil {
		return FleetSnapshot{}, err
	}

	started := time.Now()
	now := fs.clock()

	attrs, err := fs.generator.Generate(settings.FleetSize, now)
	if err != nil {
		return FleetSnapshot{}, fmt.Errorf("failed to generate fleet: %w", err)
	}

	trains := scoring.DeriveFleet(attrs, now, fs.params)
	allocation := depot.Allocate(trains, fs.layout)

	snap := &FleetSnapshot{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Trains:      trains,
		Assignments: allocation.Assignments,
		Unassigned:  allocation.Unassigned,
	}

	fs.mu.Lock()
	fs.current = snap
	fs.runs++
	fs.mu.Unlock()

	out := snap.Copy()
	if fs.onGenerated != nil {
		fs.onGenerated(out, time.Since(started))
	}
	return out, nil
}

// Snapshot returns a copy of the latest fleet snapshot
func (fs *FleetSimulator) Snapshot() (FleetSnapshot, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if fs.current == nil {
		return FleetSnapshot{}, ErrNoFleet
	}
	return fs.current.Copy(), nil
}

// HasFleet reports whether at least one generation run has completed
func (fs *FleetSimulator) HasFleet() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current != nil
}

// Runs returns the number of completed generation runs
func (fs *FleetSimulator) Runs() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.runs
}

// Train looks up a train of the current fleet by number
func (fs *FleetSimulator) Train(number string) (FleetTrain, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if fs.current == nil {
		return FleetTrain{}, ErrNoFleet
	}
	for _, t := range fs.current.Trains {
		if t.TrainNumber != number {
			continue
		}
		ft := FleetTrain{Train: t}
		for _, a := range fs.current.Assignments {
			if a.Train.TrainNumber == number {
				a.Path = append([]string(nil), a.Path...)
				ft.Assignment = &a
				break
			}
		}
		return ft, nil
	}
	return FleetTrain{}, fmt.Errorf("%w: %s", ErrTrainNotFound, number)
}
