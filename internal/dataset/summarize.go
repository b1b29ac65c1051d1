package dataset

import (
	"math"
	"strings"

	"github.com/gyeh/facilitystats/internal/model"
)

// summaryEmergencyKeywords is the keyword set the global summary uses.
// AnalyzeRegions uses a narrower set without "ambulance"; the divergence is
// inherited from the upstream dataset tooling and kept so counts stay
// comparable with it.
var summaryEmergencyKeywords = []string{"emergency", "24/7", "24 hour", "trauma", "ambulance", "urgent"}

// HasEmergencyCapability reports whether any keyword appears in the
// facility's capabilities and specialties, joined and lowercased.
func HasEmergencyCapability(f *model.Facility, keywords []string) bool {
	parts := make([]string, 0, len(f.Capabilities)+len(f.Specialties))
	parts = append(parts, f.Capabilities...)
	parts = append(parts, f.Specialties...)
	allText := strings.ToLower(strings.Join(parts, " "))
	for _, kw := range keywords {
		if strings.Contains(allText, kw) {
			return true
		}
	}
	return false
}

// Summarize folds the facility collection into global summary statistics in
// a single pass. All six facility-type buckets are pre-seeded so absent
// types still report zero.
func Summarize(facilities []model.Facility) model.DataSummary {
	byType := make(map[model.FacilityType]int, len(model.AllFacilityTypes))
	for _, t := range model.AllFacilityTypes {
		byType[t] = 0
	}
	byRegion := make(map[string]int)
	bySpecialty := make(map[string]int)

	totalScore := 0
	s := model.DataSummary{
		TotalFacilities: len(facilities),
		ByFacilityType:  byType,
		ByRegion:        byRegion,
		BySpecialty:     bySpecialty,
	}

	for i := range facilities {
		f := &facilities[i]

		byType[f.FacilityType]++
		byRegion[f.GroupKey()]++
		for _, sp := range f.Specialties {
			bySpecialty[sp]++
		}

		totalScore += f.DataCompletenessScore
		if f.NumberOfDoctors != nil && *f.NumberOfDoctors > 0 {
			s.FacilitiesWithDoctors++
		}
		if f.BedCapacity != nil && *f.BedCapacity > 0 {
			s.FacilitiesWithBeds++
		}
		if HasEmergencyCapability(f, summaryEmergencyKeywords) {
			s.FacilitiesWithEmergencyCapability++
		}
		if f.DataCompletenessScore < 50 {
			s.FacilitiesWithIncompleteData++
		}
		if !f.HasMedicalData {
			s.FacilitiesWithNoMedicalData++
		}
	}

	if len(facilities) > 0 {
		s.AverageCompletenessScore = int(math.Round(float64(totalScore) / float64(len(facilities))))
	}
	return s
}
