package dataset

import (
	"testing"

	"github.com/gyeh/facilitystats/internal/model"
)

func TestAnalyzeRegions_RiskTiers(t *testing.T) {
	facilities := []model.Facility{
		// Critical: one pharmacy, no hospitals, no emergency.
		{FacilityType: model.TypePharmacy, Region: "Upper West Region"},

		// High: hospital present but nothing emergency-capable.
		{FacilityType: model.TypeHospital, Region: "Savannah Region"},
		{FacilityType: model.TypeClinic, Region: "Savannah Region"},

		// Medium: emergency-capable but only one hospital.
		{
			FacilityType: model.TypeHospital,
			Region:       "Volta Region",
			Capabilities: []string{"24/7 emergency care"},
		},

		// Low: emergency coverage and two hospitals.
		{
			FacilityType: model.TypeHospital,
			Region:       "Greater Accra Region",
			Capabilities: []string{"trauma unit"},
		},
		{FacilityType: model.TypeHospital, Region: "Greater Accra Region"},
	}

	byRegion := make(map[string]model.RegionRisk)
	for _, r := range AnalyzeRegions(facilities) {
		byRegion[r.Region] = r
	}

	cases := map[string]model.RiskLevel{
		"Upper West Region":    model.RiskCritical,
		"Savannah Region":      model.RiskHigh,
		"Volta Region":         model.RiskMedium,
		"Greater Accra Region": model.RiskLow,
	}
	for region, want := range cases {
		got, ok := byRegion[region]
		if !ok {
			t.Fatalf("missing region %q", region)
		}
		if got.RiskLevel != want {
			t.Errorf("%s: got %s, want %s", region, got.RiskLevel, want)
		}
	}
}

func TestAnalyzeRegions_AmbulanceDoesNotCount(t *testing.T) {
	facilities := []model.Facility{
		{
			FacilityType: model.TypeHospital,
			Region:       "Bono Region",
			Capabilities: []string{"ambulance service"},
		},
	}
	regions := AnalyzeRegions(facilities)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	if regions[0].WithEmergency != 0 {
		t.Error("ambulance alone should not count as emergency coverage here")
	}
	if regions[0].RiskLevel != model.RiskHigh {
		t.Errorf("risk: got %s, want HIGH", regions[0].RiskLevel)
	}
}

func TestAnalyzeRegions_GroupKeyFallback(t *testing.T) {
	facilities := []model.Facility{
		{FacilityType: model.TypeClinic, Region: "Ashanti Region", City: "Kumasi"},
		{FacilityType: model.TypeClinic, City: "Kumasi"},
		{FacilityType: model.TypeClinic},
	}
	regions := AnalyzeRegions(facilities)
	names := make(map[string]bool)
	for _, r := range regions {
		names[r.Region] = true
	}
	for _, want := range []string{"Ashanti Region", "Kumasi", "Unknown"} {
		if !names[want] {
			t.Errorf("missing group %q in %v", want, names)
		}
	}
}

func TestAnalyzeRegions_SortOrder(t *testing.T) {
	facilities := []model.Facility{
		{FacilityType: model.TypeClinic, Region: "B Region"},
		{FacilityType: model.TypeClinic, Region: "A Region"},
		{FacilityType: model.TypeClinic, Region: "C Region"},
		{FacilityType: model.TypeClinic, Region: "C Region"},
	}
	regions := AnalyzeRegions(facilities)
	got := []string{regions[0].Region, regions[1].Region, regions[2].Region}
	want := []string{"C Region", "A Region", "B Region"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestAnalyzeRegions_AvgCompleteness(t *testing.T) {
	facilities := []model.Facility{
		{FacilityType: model.TypeClinic, Region: "Eastern Region", DataCompletenessScore: 40},
		{FacilityType: model.TypeClinic, Region: "Eastern Region", DataCompletenessScore: 45},
	}
	regions := AnalyzeRegions(facilities)
	// 42.5 rounds to 43.
	if regions[0].AvgCompleteness != 43 {
		t.Errorf("avg: got %d, want 43", regions[0].AvgCompleteness)
	}
}

func TestAnalyzeRegions_Idempotent(t *testing.T) {
	facilities := []model.Facility{
		{FacilityType: model.TypeHospital, Region: "Central Region"},
		{FacilityType: model.TypeClinic, Region: "Western Region"},
		{FacilityType: model.TypeClinic, Region: "Western Region"},
	}
	a := AnalyzeRegions(facilities)
	b := AnalyzeRegions(facilities)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
