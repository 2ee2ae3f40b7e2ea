package analytics

import (
	"sort"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// CompletionPercent returns completed/required as a percentage.
// A contract with no required hours counts as complete.
func CompletionPercent(completed, required int) float64 {
	if required <= 0 {
		return 100
	}
	return float64(completed) / float64(required) * 100
}

// RemainingHours returns the exposure hours still owed, never negative
func RemainingHours(completed, required int) int {
	if completed >= required {
		return 0
	}
	return required - completed
}

// ContractProgress is the branding progress of a single train
type ContractProgress struct {
	TrainNumber       string              `json:"trainNumber"`
	TrainName         string              `json:"trainName"`
	BrandName         string              `json:"brandName"`
	Status            core.BrandingStatus `json:"status"`
	HoursRequired     int                 `json:"hoursRequired"`
	HoursCompleted    int                 `json:"hoursCompleted"`
	HoursRemaining    int                 `json:"hoursRemaining"`
	CompletionPercent float64             `json:"completionPercent"`
}

// BrandSummary aggregates every contract of one advertiser
type BrandSummary struct {
	BrandName         string  `json:"brandName"`
	Trains            int     `json:"trains"`
	HoursRequired     int     `json:"hoursRequired"`
	HoursCompleted    int     `json:"hoursCompleted"`
	CompletionPercent float64 `json:"completionPercent"`
}

// BrandingReport is the branding-contract view of the fleet
type BrandingReport struct {
	AtRisk         int                `json:"atRisk"`
	OnTrack        int                `json:"onTrack"`
	HoursRequired  int                `json:"hoursRequired"`
	HoursCompleted int                `json:"hoursCompleted"`
	Contracts      []ContractProgress `json:"contracts"`
	Brands         []BrandSummary     `json:"brands"`
}

// ReportBranding lists contracts with At Risk first and the least complete
// contracts first within each group. Brands appear in fleet order.
func ReportBranding(trains []core.Train) BrandingReport {
	report := BrandingReport{
		Contracts: make([]ContractProgress, 0, len(trains)),
		Brands:    []BrandSummary{},
	}
	brandIndex := make(map[string]int)

	for _, t := range trains {
		required, completed := t.ExposureHoursRequired, t.ExposureHoursCompleted

		if t.BrandingStatus == core.BrandingAtRisk {
			report.AtRisk++
		} else {
			report.OnTrack++
		}
		report.HoursRequired += required
		report.HoursCompleted += completed

		report.Contracts = append(report.Contracts, ContractProgress{
			TrainNumber:       t.TrainNumber,
			TrainName:         t.TrainName,
			BrandName:         t.BrandName,
			Status:            t.BrandingStatus,
			HoursRequired:     required,
			HoursCompleted:    completed,
			HoursRemaining:    RemainingHours(completed, required),
			CompletionPercent: CompletionPercent(completed, required),
		})

		idx, ok := brandIndex[t.BrandName]
		if !ok {
			idx = len(report.Brands)
			brandIndex[t.BrandName] = idx
			report.Brands = append(report.Brands, BrandSummary{BrandName: t.BrandName})
		}
		b := &report.Brands[idx]
		b.Trains++
		b.HoursRequired += required
		b.HoursCompleted += completed
	}

	for i := range report.Brands {
		b := &report.Brands[i]
		b.CompletionPercent = CompletionPercent(b.HoursCompleted, b.HoursRequired)
	}

	sort.SliceStable(report.Contracts, func(i, j int) bool {
		ci, cj := report.Contracts[i], report.Contracts[j]
		if ci.Status != cj.Status {
			return ci.Status == core.BrandingAtRisk
		}
		return ci.CompletionPercent < cj.CompletionPercent
	})

	return report
}
