package model

import "time"

// DataSummary is the read-only aggregate over a full facility collection.
type DataSummary struct {
	TotalFacilities int `json:"totalFacilities"`

	// ByFacilityType always carries all six type buckets, zero-filled.
	ByFacilityType map[FacilityType]int `json:"byFacilityType"`
	ByRegion       map[string]int       `json:"byRegion"`
	BySpecialty    map[string]int       `json:"bySpecialty"`

	// Medical desert coverage counts
	FacilitiesWithDoctors             int `json:"facilitiesWithDoctors"`
	FacilitiesWithBeds                int `json:"facilitiesWithBeds"`
	FacilitiesWithEmergencyCapability int `json:"facilitiesWithEmergencyCapability"`

	// Data quality
	AverageCompletenessScore     int `json:"averageCompletenessScore"`
	FacilitiesWithIncompleteData int `json:"facilitiesWithIncompleteData"`
	FacilitiesWithNoMedicalData  int `json:"facilitiesWithNoMedicalData"`
}

// RiskLevel is the four-tier medical desert classification for a region.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RegionRisk holds per-region coverage tallies and the assigned risk tier.
// Recomputed from scratch on every dataset load, never updated in place.
type RegionRisk struct {
	Region          string    `json:"region"`
	TotalFacilities int       `json:"totalFacilities"`
	Hospitals       int       `json:"hospitals"`
	Clinics         int       `json:"clinics"`
	WithDoctors     int       `json:"withDoctors"`
	WithBeds        int       `json:"withBeds"`
	WithEmergency   int       `json:"withEmergency"`
	AvgCompleteness int       `json:"avgCompleteness"`
	RiskLevel       RiskLevel `json:"riskLevel"`
}

// LoadStats captures metrics from a single dataset processing run.
type LoadStats struct {
	SourceName      string
	RowsRead        int64
	FacilitiesBuilt int64
	RegionsAnalyzed int64
	DurationParse   time.Duration
	DurationBuild   time.Duration
	DurationSummary time.Duration
	DurationRegions time.Duration
	DurationTotal   time.Duration
}
