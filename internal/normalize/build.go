package normalize

import (
	"fmt"
	"strings"

	"github.com/gyeh/facilitystats/internal/csvread"
	"github.com/gyeh/facilitystats/internal/model"
)

var bracketStripper = strings.NewReplacer("[", "", "]", "", `"`, "")

// BuildFacility assembles one cleaned Facility from a raw row. index is used
// only for the synthesized-id fallback when no id column is present. The
// completeness score is computed last, from the assembled record.
func BuildFacility(row csvread.Row, index int) model.Facility {
	specialtiesRaw := ParseList(row.Value(csvread.ColSpecialties))
	specialties := make([]string, len(specialtiesRaw))
	for i, s := range specialtiesRaw {
		specialties[i] = CleanSpecialty(s)
	}
	procedures := ParseList(row.Value(csvread.ColProcedure))
	equipment := ParseList(row.Value(csvread.ColEquipment))
	capabilities := ParseList(row.Value(csvread.ColCapability))
	phoneNumbers := ParseList(row.Value(csvread.ColPhoneNumbers))

	_, hasCity := row.Lookup(csvread.ColAddressCity)
	_, hasLine1 := row.Lookup(csvread.ColAddressLine1)
	_, hasEmail := row.Lookup(csvread.ColEmail)
	_, hasDoctorCount := row.Lookup(csvread.ColNumberDoctors)
	_, hasCapacity := row.Lookup(csvread.ColCapacity)

	f := model.Facility{
		ID:               facilityID(row, index),
		Name:             defaulted(row.Value(csvread.ColName), "Unknown Facility"),
		OrganizationType: defaulted(row.Value(csvread.ColOrganizationType), "facility"),
		FacilityType:     FacilityTypeOf(row.Value(csvread.ColFacilityTypeID)),
		OperatorType:     OperatorTypeOf(row.Value(csvread.ColOperatorTypeID)),
		Affiliations:     ParseAffiliations(row.Value(csvread.ColAffiliationTypeIDs)),

		Address: BuildAddress(
			row.Value(csvread.ColAddressLine1),
			row.Value(csvread.ColAddressLine2),
			row.Value(csvread.ColAddressLine3),
			row.Value(csvread.ColAddressCity),
			row.Value(csvread.ColAddressRegion),
		),
		City:        defaulted(row.Value(csvread.ColAddressCity), "Unknown"),
		Region:      row.Value(csvread.ColAddressRegion),
		Country:     defaulted(row.Value(csvread.ColAddressCountry), "Ghana"),
		CountryCode: defaulted(row.Value(csvread.ColAddressCountryCode), "GH"),

		PhoneNumbers: phoneNumbers,
		Email:        optStr(row.Value(csvread.ColEmail)),
		Website:      pickWebsite(row),

		Specialties:  specialties,
		Procedures:   procedures,
		Equipment:    equipment,
		Capabilities: capabilities,

		Description:       optStr(row.Value(csvread.ColDescription)),
		YearEstablished:   ParseOptionalInt(row.Value(csvread.ColYearEstablished)),
		NumberOfDoctors:   ParseOptionalInt(row.Value(csvread.ColNumberDoctors)),
		BedCapacity:       ParseOptionalInt(row.Value(csvread.ColCapacity)),
		AcceptsVolunteers: ParseTriState(row.Value(csvread.ColAcceptsVolunteers)),

		HasCompleteAddress: hasCity && hasLine1,
		HasContactInfo:     len(phoneNumbers) > 0 || hasEmail,
		HasMedicalData:     len(specialties) > 0 || len(procedures) > 0 || len(equipment) > 0 || len(capabilities) > 0,
		HasCapacityData:    hasDoctorCount || hasCapacity,

		SourceURL: optStr(row.Value(csvread.ColSourceURL)),
	}

	f.DataCompletenessScore = CompletenessScore(&f)
	return f
}

// facilityID prefers unique_id, then pk_unique_id, then a synthesized id
// from the row index. Keeps ids unique and non-empty within a dataset.
func facilityID(row csvread.Row, index int) string {
	if v, ok := row.Lookup(csvread.ColUniqueID); ok {
		return v
	}
	if v, ok := row.Lookup(csvread.ColPKUniqueID); ok {
		return v
	}
	return fmt.Sprintf("facility-%d", index)
}

// pickWebsite prefers the explicit officialWebsite column, else the first
// entry of the comma-joined websites column with brackets and quotes
// stripped.
func pickWebsite(row csvread.Row) *string {
	if v, ok := row.Lookup(csvread.ColOfficialWebsite); ok {
		return &v
	}
	raw, ok := row.Lookup(csvread.ColWebsites)
	if !ok {
		return nil
	}
	first := strings.Split(bracketStripper.Replace(raw), ",")[0]
	return optStr(first)
}

func defaulted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
