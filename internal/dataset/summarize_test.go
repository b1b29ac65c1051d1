package dataset

import (
	"testing"

	"github.com/gyeh/facilitystats/internal/model"
)

func intp(n int) *int { return &n }

func TestSummarize_TypeBucketsCoverTotal(t *testing.T) {
	facilities := []model.Facility{
		{FacilityType: model.TypeHospital, Region: "Ashanti Region"},
		{FacilityType: model.TypeClinic, Region: "Ashanti Region"},
		{FacilityType: model.TypeUnknown, Region: "Volta Region"},
	}
	s := Summarize(facilities)

	if s.TotalFacilities != 3 {
		t.Fatalf("total: got %d", s.TotalFacilities)
	}
	if len(s.ByFacilityType) != len(model.AllFacilityTypes) {
		t.Errorf("expected all %d type buckets, got %d",
			len(model.AllFacilityTypes), len(s.ByFacilityType))
	}
	sum := 0
	for _, n := range s.ByFacilityType {
		sum += n
	}
	if sum != s.TotalFacilities {
		t.Errorf("type buckets sum to %d, want %d", sum, s.TotalFacilities)
	}
	if s.ByFacilityType[model.TypePharmacy] != 0 {
		t.Error("absent type should still report zero")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalFacilities != 0 || s.AverageCompletenessScore != 0 {
		t.Errorf("empty summary: %+v", s)
	}
	if len(s.ByFacilityType) != len(model.AllFacilityTypes) {
		t.Error("type buckets should be zero-filled even when empty")
	}
}

func TestSummarize_CoverageAndQuality(t *testing.T) {
	zero := 0
	facilities := []model.Facility{
		{
			FacilityType:          model.TypeHospital,
			Region:                "Northern Region",
			NumberOfDoctors:       intp(12),
			BedCapacity:           intp(80),
			Capabilities:          []string{"24/7 emergency care"},
			Specialties:           []string{"Surgery"},
			HasMedicalData:        true,
			DataCompletenessScore: 90,
		},
		{
			FacilityType:          model.TypeClinic,
			Region:                "Northern Region",
			NumberOfDoctors:       &zero, // zero doctors does not count as coverage
			DataCompletenessScore: 20,
		},
	}
	s := Summarize(facilities)

	if s.FacilitiesWithDoctors != 1 {
		t.Errorf("with doctors: got %d", s.FacilitiesWithDoctors)
	}
	if s.FacilitiesWithBeds != 1 {
		t.Errorf("with beds: got %d", s.FacilitiesWithBeds)
	}
	if s.FacilitiesWithEmergencyCapability != 1 {
		t.Errorf("with emergency: got %d", s.FacilitiesWithEmergencyCapability)
	}
	if s.FacilitiesWithIncompleteData != 1 {
		t.Errorf("incomplete (<50): got %d", s.FacilitiesWithIncompleteData)
	}
	if s.FacilitiesWithNoMedicalData != 1 {
		t.Errorf("no medical data: got %d", s.FacilitiesWithNoMedicalData)
	}
	// 90+20 over 2 rounds to 55.
	if s.AverageCompletenessScore != 55 {
		t.Errorf("average: got %d", s.AverageCompletenessScore)
	}
}

func TestHasEmergencyCapability_KeywordSets(t *testing.T) {
	amb := model.Facility{Capabilities: []string{"Ambulance service"}}

	if !HasEmergencyCapability(&amb, summaryEmergencyKeywords) {
		t.Error("summary set should match ambulance")
	}
	// The region analysis set deliberately omits "ambulance".
	if HasEmergencyCapability(&amb, regionEmergencyKeywords) {
		t.Error("region set should not match ambulance")
	}

	spec := model.Facility{Specialties: []string{"Emergency Medicine"}}
	if !HasEmergencyCapability(&spec, regionEmergencyKeywords) {
		t.Error("specialties should also be searched")
	}

	none := model.Facility{Capabilities: []string{"outpatient care"}}
	if HasEmergencyCapability(&none, summaryEmergencyKeywords) {
		t.Error("no keyword should mean no match")
	}
}
