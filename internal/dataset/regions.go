package dataset

import (
	"math"
	"sort"

	"github.com/gyeh/facilitystats/internal/model"
)

// regionEmergencyKeywords omits "ambulance" relative to the summary's set.
// See the note on summaryEmergencyKeywords.
var regionEmergencyKeywords = []string{"emergency", "24/7", "24 hour", "trauma", "urgent"}

// AnalyzeRegions groups facilities by region (falling back to city, then
// "Unknown") and assigns each group a medical desert risk tier. Rules apply
// in strict order, first match wins:
//
//  1. no emergency-capable facilities and no hospitals → CRITICAL
//  2. no emergency-capable facilities                  → HIGH
//  3. fewer than two hospitals                         → MEDIUM
//  4. otherwise                                        → LOW
//
// Output is sorted by total facility count descending; ties break by region
// name so repeated runs produce identical output.
func AnalyzeRegions(facilities []model.Facility) []model.RegionRisk {
	type tally struct {
		risk              model.RegionRisk
		totalCompleteness int
	}
	groups := make(map[string]*tally)

	for i := range facilities {
		f := &facilities[i]
		key := f.GroupKey()
		g, ok := groups[key]
		if !ok {
			g = &tally{risk: model.RegionRisk{Region: key}}
			groups[key] = g
		}

		g.risk.TotalFacilities++
		if f.FacilityType == model.TypeHospital {
			g.risk.Hospitals++
		}
		if f.FacilityType == model.TypeClinic {
			g.risk.Clinics++
		}
		if f.NumberOfDoctors != nil && *f.NumberOfDoctors > 0 {
			g.risk.WithDoctors++
		}
		if f.BedCapacity != nil && *f.BedCapacity > 0 {
			g.risk.WithBeds++
		}
		if HasEmergencyCapability(f, regionEmergencyKeywords) {
			g.risk.WithEmergency++
		}
		g.totalCompleteness += f.DataCompletenessScore
	}

	out := make([]model.RegionRisk, 0, len(groups))
	for _, g := range groups {
		r := g.risk
		r.AvgCompleteness = int(math.Round(float64(g.totalCompleteness) / float64(r.TotalFacilities)))
		r.RiskLevel = classify(r)
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFacilities != out[j].TotalFacilities {
			return out[i].TotalFacilities > out[j].TotalFacilities
		}
		return out[i].Region < out[j].Region
	})
	return out
}

func classify(r model.RegionRisk) model.RiskLevel {
	switch {
	case r.WithEmergency == 0 && r.Hospitals == 0:
		return model.RiskCritical
	case r.WithEmergency == 0:
		return model.RiskHigh
	case r.Hospitals < 2:
		return model.RiskMedium
	}
	return model.RiskLow
}
