package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

var refNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

func TestGenerateDefaultFleet(t *testing.T) {
	trains, err := NewGenerator(1).Generate(DefaultFleetSize, refNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trains) != DefaultFleetSize {
		t.Fatalf("expected %d trains, got %d", DefaultFleetSize, len(trains))
	}

	seen := make(map[string]bool)
	for _, tr := range trains {
		if seen[tr.TrainNumber] {
			t.Fatalf("duplicate train number %s", tr.TrainNumber)
		}
		seen[tr.TrainNumber] = true

		if tr.CleanlinessScore < MinCleanliness || tr.CleanlinessScore > MaxCleanliness {
			t.Errorf("%s cleanliness out of range: %d", tr.TrainNumber, tr.CleanlinessScore)
		}
		if tr.Mileage < MinMileage || tr.Mileage > MaxMileage {
			t.Errorf("%s mileage out of range: %d", tr.TrainNumber, tr.Mileage)
		}
		if tr.DailyCrowdCount < MinDailyCrowd || tr.DailyCrowdCount > MaxDailyCrowd {
			t.Errorf("%s crowd out of range: %d", tr.TrainNumber, tr.DailyCrowdCount)
		}
		if tr.ExposureHoursRequired < MinExposureRequired || tr.ExposureHoursRequired > MaxExposureRequired {
			t.Errorf("%s exposure required out of range: %d", tr.TrainNumber, tr.ExposureHoursRequired)
		}
		if tr.ExposureHoursCompleted < MinExposureCompleted || tr.ExposureHoursCompleted > MaxExposureCompleted {
			t.Errorf("%s exposure completed out of range: %d", tr.TrainNumber, tr.ExposureHoursCompleted)
		}
		if !tr.ExpiryDate.After(tr.IssueDate) {
			t.Errorf("%s expiry %v does not postdate issue %v", tr.TrainNumber, tr.ExpiryDate, tr.IssueDate)
		}
		if tr.LastInspectionDate.After(refNow) {
			t.Errorf("%s inspected in the future", tr.TrainNumber)
		}
		if tr.JobCardStatus.Urgency() < 0 {
			t.Errorf("%s has unknown job card status %q", tr.TrainNumber, tr.JobCardStatus)
		}
	}

	if trains[0].TrainNumber != "01" || trains[24].TrainNumber != "25" {
		t.Fatalf("expected zero-padded numbering, got %s..%s", trains[0].TrainNumber, trains[24].TrainNumber)
	}
	if trains[0].TrainName != "KRISHNA" {
		t.Fatalf("expected first name KRISHNA, got %s", trains[0].TrainName)
	}
}

func TestGenerateLargeFleetKeepsNumbersUnique(t *testing.T) {
	trains, err := NewGenerator(3).Generate(120, refNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trains[0].TrainNumber != "001" {
		t.Fatalf("expected width to grow with count, got %s", trains[0].TrainNumber)
	}
	if trains[25].TrainName != "KRISHNA-2" {
		t.Fatalf("expected repeated names to be suffixed, got %s", trains[25].TrainName)
	}
	seen := make(map[string]bool)
	for _, tr := range trains {
		if seen[tr.TrainNumber] {
			t.Fatalf("duplicate train number %s", tr.TrainNumber)
		}
		seen[tr.TrainNumber] = true
	}
}

func TestGenerateEmptyAndNegative(t *testing.T) {
	trains, err := NewGenerator(1).Generate(0, refNow)
	if err != nil || len(trains) != 0 {
		t.Fatalf("expected empty fleet, got %d trains, err %v", len(trains), err)
	}
	if _, err := NewGenerator(1).Generate(-1, refNow); err == nil {
		t.Fatal("expected error for negative fleet size")
	}
}

func TestGenerateSameSeedSameFleet(t *testing.T) {
	a, _ := NewGenerator(99).Generate(10, refNow)
	b, _ := NewGenerator(99).Generate(10, refNow)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("train %d differs between identical seeds", i)
		}
	}
}

func validAttributes() core.TrainAttributes {
	return core.TrainAttributes{
		TrainNumber:            "01",
		TrainName:              "KRISHNA",
		IssueDate:              refNow.AddDate(-3, 0, 0),
		ExpiryDate:             refNow.AddDate(1, 0, 0),
		LastInspectionDate:     refNow.AddDate(0, -1, 0),
		JobCardStatus:          core.JobCardClosed,
		CleanlinessScore:       80,
		Mileage:                50000,
		DailyCrowdCount:        2000,
		BrandName:              "Jio",
		ExposureHoursRequired:  200,
		ExposureHoursCompleted: 100,
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validAttributes()); err != nil {
		t.Fatalf("expected valid attributes, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(a *core.TrainAttributes)
	}{
		{"expiry before issue", func(a *core.TrainAttributes) { a.ExpiryDate = a.IssueDate.Add(-time.Hour) }},
		{"expiry equals issue", func(a *core.TrainAttributes) { a.ExpiryDate = a.IssueDate }},
		{"cleanliness too low", func(a *core.TrainAttributes) { a.CleanlinessScore = 39 }},
		{"mileage too high", func(a *core.TrainAttributes) { a.Mileage = 200001 }},
		{"crowd too low", func(a *core.TrainAttributes) { a.DailyCrowdCount = 10 }},
		{"unknown job card", func(a *core.TrainAttributes) { a.JobCardStatus = "Archived" }},
		{"missing number", func(a *core.TrainAttributes) { a.TrainNumber = "" }},
		{"missing inspection", func(a *core.TrainAttributes) { a.LastInspectionDate = time.Time{} }},
		{"exposure required too high", func(a *core.TrainAttributes) { a.ExposureHoursRequired = 501 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttributes()
			tt.mutate(&attrs)
			err := Validate(attrs)
			if !errors.Is(err, ErrInvalidTrain) {
				t.Fatalf("expected ErrInvalidTrain, got %v", err)
			}
		})
	}
}
