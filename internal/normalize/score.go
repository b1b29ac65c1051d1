package normalize

import "github.com/gyeh/facilitystats/internal/model"

// Completeness score weights. They sum to 105; the score is deliberately
// not rescaled to 100 (see the field doc on model.Facility).
const (
	weightName            = 10
	weightAddress         = 10
	weightCity            = 5
	weightRegion          = 5
	weightPhoneNumbers    = 10
	weightEmail           = 5
	weightWebsite         = 5
	weightSpecialties     = 15
	weightProcedures      = 10
	weightEquipment       = 10
	weightCapabilities    = 10
	weightNumberOfDoctors = 5
	weightBedCapacity     = 5
)

// CompletenessScore is the weighted field-presence sum over an assembled
// record; call it only after every other field is set.
//
// The name check tests against "Unknown" while the builder's default is
// "Unknown Facility", so a defaulted name still earns its weight. That
// mismatch is inherited from the upstream dataset tooling and kept so
// scores stay comparable with it.
func CompletenessScore(f *model.Facility) int {
	score := 0
	if f.Name != "" && f.Name != "Unknown" {
		score += weightName
	}
	if f.Address != "" && f.Address != "Unknown" {
		score += weightAddress
	}
	if f.City != "" && f.City != "Unknown" {
		score += weightCity
	}
	if f.Region != "" {
		score += weightRegion
	}
	if len(f.PhoneNumbers) > 0 {
		score += weightPhoneNumbers
	}
	if f.Email != nil {
		score += weightEmail
	}
	if f.Website != nil {
		score += weightWebsite
	}
	if len(f.Specialties) > 0 {
		score += weightSpecialties
	}
	if len(f.Procedures) > 0 {
		score += weightProcedures
	}
	if len(f.Equipment) > 0 {
		score += weightEquipment
	}
	if len(f.Capabilities) > 0 {
		score += weightCapabilities
	}
	if f.NumberOfDoctors != nil {
		score += weightNumberOfDoctors
	}
	if f.BedCapacity != nil {
		score += weightBedCapacity
	}
	return score
}
