package model

// FacilityParquetRow mirrors the Parquet export schema for one facility.
// List-valued fields are flattened to semicolon-joined strings so the file
// stays readable in spreadsheet-adjacent tooling.
type FacilityParquetRow struct {
	ID               string `parquet:"facility_id"`
	Name             string `parquet:"name"`
	OrganizationType string `parquet:"organization_type"`
	FacilityType     string `parquet:"facility_type"`
	OperatorType     string `parquet:"operator_type"`
	Affiliations     string `parquet:"affiliations"`

	Address     string `parquet:"address"`
	City        string `parquet:"city"`
	Region      string `parquet:"region"`
	Country     string `parquet:"country"`
	CountryCode string `parquet:"country_code"`

	PhoneNumbers string  `parquet:"phone_numbers"`
	Email        *string `parquet:"email,optional"`
	Website      *string `parquet:"website,optional"`

	Specialties  string `parquet:"specialties"`
	Procedures   string `parquet:"procedures"`
	Equipment    string `parquet:"equipment"`
	Capabilities string `parquet:"capabilities"`

	Description       *string `parquet:"description,optional"`
	YearEstablished   *int32  `parquet:"year_established,optional"`
	NumberOfDoctors   *int32  `parquet:"number_of_doctors,optional"`
	BedCapacity       *int32  `parquet:"bed_capacity,optional"`
	AcceptsVolunteers *bool   `parquet:"accepts_volunteers,optional"`

	HasCompleteAddress bool  `parquet:"has_complete_address"`
	HasContactInfo     bool  `parquet:"has_contact_info"`
	HasMedicalData     bool  `parquet:"has_medical_data"`
	HasCapacityData    bool  `parquet:"has_capacity_data"`
	CompletenessScore  int32 `parquet:"completeness_score"`

	SourceURL *string `parquet:"source_url,optional"`
}
