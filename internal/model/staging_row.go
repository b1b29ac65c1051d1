package model

import "github.com/google/uuid"

// facilityColumns is the COPY column order for facility.facilities.
var facilityColumns = []string{
	"dataset_id",
	"load_batch_id",
	"facility_id",
	"name",
	"organization_type",
	"facility_type",
	"operator_type",
	"affiliations",
	"address",
	"city",
	"region",
	"country",
	"country_code",
	"phone_numbers",
	"email",
	"website",
	"specialties",
	"procedures",
	"equipment",
	"capabilities",
	"description",
	"year_established",
	"number_of_doctors",
	"bed_capacity",
	"accepts_volunteers",
	"has_complete_address",
	"has_contact_info",
	"has_medical_data",
	"has_capacity_data",
	"completeness_score",
	"source_url",
}

// FacilityColumns returns the COPY column list for the facilities table.
func FacilityColumns() []string {
	return facilityColumns
}

// StagingRow pairs a cleaned facility with its load identifiers for the
// COPY protocol.
type StagingRow struct {
	DatasetID   int64
	LoadBatchID uuid.UUID
	Facility    *Facility
}

// CopyValues returns the row's values in FacilityColumns order.
func (r *StagingRow) CopyValues() []any {
	f := r.Facility
	affiliations := make([]string, len(f.Affiliations))
	for i, a := range f.Affiliations {
		affiliations[i] = string(a)
	}
	return []any{
		r.DatasetID,
		r.LoadBatchID,
		f.ID,
		f.Name,
		f.OrganizationType,
		string(f.FacilityType),
		string(f.OperatorType),
		affiliations,
		f.Address,
		f.City,
		f.Region,
		f.Country,
		f.CountryCode,
		f.PhoneNumbers,
		f.Email,
		f.Website,
		f.Specialties,
		f.Procedures,
		f.Equipment,
		f.Capabilities,
		f.Description,
		f.YearEstablished,
		f.NumberOfDoctors,
		f.BedCapacity,
		f.AcceptsVolunteers,
		f.HasCompleteAddress,
		f.HasContactInfo,
		f.HasMedicalData,
		f.HasCapacityData,
		f.DataCompletenessScore,
		f.SourceURL,
	}
}
