package model

// FacilityType is the canonical facility classification derived from the
// export's raw facilityTypeId column.
type FacilityType string

const (
	TypeHospital FacilityType = "hospital"
	TypeClinic   FacilityType = "clinic"
	TypePharmacy FacilityType = "pharmacy"
	TypeDoctor   FacilityType = "doctor"
	TypeDentist  FacilityType = "dentist"
	TypeUnknown  FacilityType = "unknown"
)

// AllFacilityTypes lists every classification in substring-match priority
// order: the first keyword found in the raw type string wins, so a value
// like "university teaching hospital & clinic" classifies as hospital.
var AllFacilityTypes = []FacilityType{
	TypeHospital,
	TypeClinic,
	TypePharmacy,
	TypeDentist,
	TypeDoctor,
	TypeUnknown,
}

// OperatorType says who runs the facility.
type OperatorType string

const (
	OperatorPublic  OperatorType = "public"
	OperatorPrivate OperatorType = "private"
	OperatorUnknown OperatorType = "unknown"
)

// Affiliation is one of the affiliation tags defined by the source schema.
// Anything outside this set is dropped during normalization.
type Affiliation string

var AllAffiliations = []Affiliation{
	"faith-tradition",
	"philanthropy-legacy",
	"community",
	"academic",
	"government",
}

// ValidAffiliation reports whether s is one of the known affiliation tags.
func ValidAffiliation(s string) bool {
	for _, a := range AllAffiliations {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Facility is one cleaned record built from a single CSV row.
// Pointer fields are nil when the source column was empty or unparseable.
type Facility struct {
	// Identity
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	OrganizationType string        `json:"organizationType"`
	FacilityType     FacilityType  `json:"facilityType"`
	OperatorType     OperatorType  `json:"operatorType"`
	Affiliations     []Affiliation `json:"affiliations"`

	// Location
	Address     string `json:"address"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`

	// Contact
	PhoneNumbers []string `json:"phoneNumbers"`
	Email        *string  `json:"email"`
	Website      *string  `json:"website"`

	// Medical capabilities
	Specialties  []string `json:"specialties"`
	Procedures   []string `json:"procedures"`
	Equipment    []string `json:"equipment"`
	Capabilities []string `json:"capabilities"`

	// Metadata
	Description       *string `json:"description"`
	YearEstablished   *int    `json:"yearEstablished"`
	NumberOfDoctors   *int    `json:"numberOfDoctors"`
	BedCapacity       *int    `json:"bedCapacity"`
	AcceptsVolunteers *bool   `json:"acceptsVolunteers"`

	// Quality flags
	HasCompleteAddress bool `json:"hasCompleteAddress"`
	HasContactInfo     bool `json:"hasContactInfo"`
	HasMedicalData     bool `json:"hasMedicalData"`
	HasCapacityData    bool `json:"hasCapacityData"`

	// DataCompletenessScore is a weighted sum over 13 field-presence checks.
	// The weights total 105, so the true ceiling is 105, not 100; consumers
	// that label it a percentage treat 100 as an approximate ceiling.
	DataCompletenessScore int `json:"dataCompletenessScore"`

	SourceURL *string `json:"sourceUrl"`
}

// GroupKey is the grouping key shared by the summary and the region risk
// analysis: region when set, else city, else "Unknown".
func (f *Facility) GroupKey() string {
	if f.Region != "" {
		return f.Region
	}
	if f.City != "" {
		return f.City
	}
	return "Unknown"
}
