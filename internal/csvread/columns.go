package csvread

// Column names recognized in the facility export. Anything outside this set
// is dropped at the tokenizer boundary.
type Column string

const (
	ColUniqueID           Column = "unique_id"
	ColPKUniqueID         Column = "pk_unique_id"
	ColName               Column = "name"
	ColOrganizationType   Column = "organization_type"
	ColFacilityTypeID     Column = "facilityTypeId"
	ColOperatorTypeID     Column = "operatorTypeId"
	ColAffiliationTypeIDs Column = "affiliationTypeIds"
	ColAddressLine1       Column = "address_line1"
	ColAddressLine2       Column = "address_line2"
	ColAddressLine3       Column = "address_line3"
	ColAddressCity        Column = "address_city"
	ColAddressRegion      Column = "address_stateOrRegion"
	ColAddressCountry     Column = "address_country"
	ColAddressCountryCode Column = "address_countryCode"
	ColPhoneNumbers       Column = "phone_numbers"
	ColEmail              Column = "email"
	ColOfficialWebsite    Column = "officialWebsite"
	ColWebsites           Column = "websites"
	ColSpecialties        Column = "specialties"
	ColProcedure          Column = "procedure"
	ColEquipment          Column = "equipment"
	ColCapability         Column = "capability"
	ColDescription        Column = "description"
	ColYearEstablished    Column = "yearEstablished"
	ColNumberDoctors      Column = "numberDoctors"
	ColCapacity           Column = "capacity"
	ColAcceptsVolunteers  Column = "acceptsVolunteers"
	ColSourceURL          Column = "source_url"
)

// KnownColumns lists every column the pipeline reads.
var KnownColumns = []Column{
	ColUniqueID, ColPKUniqueID, ColName, ColOrganizationType,
	ColFacilityTypeID, ColOperatorTypeID, ColAffiliationTypeIDs,
	ColAddressLine1, ColAddressLine2, ColAddressLine3, ColAddressCity,
	ColAddressRegion, ColAddressCountry, ColAddressCountryCode,
	ColPhoneNumbers, ColEmail, ColOfficialWebsite, ColWebsites,
	ColSpecialties, ColProcedure, ColEquipment, ColCapability,
	ColDescription, ColYearEstablished, ColNumberDoctors, ColCapacity,
	ColAcceptsVolunteers, ColSourceURL,
}

var knownSet = func() map[Column]bool {
	m := make(map[Column]bool, len(KnownColumns))
	for _, c := range KnownColumns {
		m[c] = true
	}
	return m
}()

// Known reports whether name is a recognized column.
func Known(name string) bool {
	return knownSet[Column(name)]
}
