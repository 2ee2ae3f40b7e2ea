package fleet

import (
	"fmt"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// DefaultFleetSize is the number of trains generated per run
const DefaultFleetSize = 25

// TrainNames is the fixed pool of display names
var TrainNames = []string{
	"KRISHNA", "TAPTI", "NILA", "GANGA", "YAMUNA", "KAVERI", "GODAVARI", "NARMADA",
	"CHENAB", "RAVI", "BEAS", "SUTLEJ", "INDUS", "BRAHMAPUTRA", "MAHANADI",
	"TUNGABHADRA", "KOSI", "GHAGHRA", "GANDAK", "CHAMBAL", "BETWA", "SON",
	"DAMODAR", "PAVAN", "MAARUT",
}

// BrandNames is the pool of advertisers holding branding contracts
var BrandNames = []string{
	"Coca Cola", "Pepsi", "Airtel", "Jio", "TATA", "Google Pay", "Amazon", "Swiggy", "Zomato",
}

// Attribute ranges
const (
	MinCleanliness = 40
	MaxCleanliness = 100

	MinMileage = 5000
	MaxMileage = 200000

	MinDailyCrowd = 500
	MaxDailyCrowd = 5000

	MinExposureRequired  = 100
	MaxExposureRequired  = 500
	MinExposureCompleted = 0
	MaxExposureCompleted = 300
)

const day = 24 * time.Hour

// Generator synthesizes raw train attributes
type Generator struct {
	rs *core.RandomSource
}

// NewGenerator creates a generator. A zero seed draws from the current time.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rs: core.NewRandomSource(seed),
	}
}

// Generate creates count trains with independently randomized attributes.
// Dates are placed relative to now so that every run covers the whole
// range of expiry and inspection stages.
func (g *Generator) Generate(count int, now time.Time) ([]core.TrainAttributes, error) {
	if count < 0 {
		return nil, fmt.Errorf("fleet size must not be negative, got %d", count)
	}

	trains := make([]core.TrainAttributes, 0, count)
	width := len(fmt.Sprint(count))
	if width < 2 {
		width = 2
	}

	for i := 0; i < count; i++ {
		attrs := g.generateTrain(i, width, now)
		if err := Validate(attrs); err != nil {
			return nil, err
		}
		trains = append(trains, attrs)
	}

	return trains, nil
}

func (g *Generator) generateTrain(index, width int, now time.Time) core.TrainAttributes {
	issueDate := g.rs.TimeBetween(now.AddDate(-6, 0, 0), now.AddDate(-1, 0, 0))
	expiryDate := g.rs.TimeBetween(now.Add(-60*day), now.AddDate(2, 0, 0))
	lastInspection := g.rs.TimeBetween(now.Add(-400*day), now)

	return core.TrainAttributes{
		TrainNumber:        fmt.Sprintf("%0*d", width, index+1),
		TrainName:          trainName(index),
		IssueDate:          issueDate,
		ExpiryDate:         expiryDate,
		LastInspectionDate: lastInspection,
		JobCardStatus:      core.JobCardStatuses[g.rs.Index(len(core.JobCardStatuses))],
		CleanlinessScore:   g.rs.UniformInt(MinCleanliness, MaxCleanliness),
		Mileage:            g.rs.UniformInt(MinMileage, MaxMileage),
		DailyCrowdCount:    g.rs.UniformInt(MinDailyCrowd, MaxDailyCrowd),

		BrandName:              BrandNames[g.rs.Index(len(BrandNames))],
		ExposureHoursRequired:  g.rs.UniformInt(MinExposureRequired, MaxExposureRequired),
		ExposureHoursCompleted: g.rs.UniformInt(MinExposureCompleted, MaxExposureCompleted),
	}
}

// trainName cycles through the name pool, suffixing repeats
func trainName(index int) string {
	name := TrainNames[index%len(TrainNames)]
	if round := index / len(TrainNames); round > 0 {
		return fmt.Sprintf("%s-%d", name, round+1)
	}
	return name
}
