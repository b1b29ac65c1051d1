package normalize

import (
	"strings"

	"github.com/gyeh/facilitystats/internal/model"
)

// FacilityTypeOf classifies a raw facilityTypeId value by substring match,
// in fixed priority order. "university teaching hospital & clinic" is a
// hospital because hospital outranks clinic.
func FacilityTypeOf(raw string) model.FacilityType {
	if raw == "" {
		return model.TypeUnknown
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "hospital"):
		return model.TypeHospital
	case strings.Contains(lower, "clinic"):
		return model.TypeClinic
	case strings.Contains(lower, "pharmacy"):
		return model.TypePharmacy
	case strings.Contains(lower, "dentist"):
		return model.TypeDentist
	case strings.Contains(lower, "doctor"):
		return model.TypeDoctor
	}
	return model.TypeUnknown
}

// OperatorTypeOf classifies a raw operatorTypeId value. "government" counts
// as public.
func OperatorTypeOf(raw string) model.OperatorType {
	if raw == "" {
		return model.OperatorUnknown
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "public"), strings.Contains(lower, "government"):
		return model.OperatorPublic
	case strings.Contains(lower, "private"):
		return model.OperatorPrivate
	}
	return model.OperatorUnknown
}

// ParseAffiliations parses the affiliationTypeIds list and keeps only tags
// in the valid set. Unrecognized tags are dropped silently.
func ParseAffiliations(raw string) []model.Affiliation {
	var out []model.Affiliation
	for _, tag := range ParseList(raw) {
		if model.ValidAffiliation(tag) {
			out = append(out, model.Affiliation(tag))
		}
	}
	return out
}
