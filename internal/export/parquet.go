package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilitystats/internal/model"
)

// WriteParquet streams the facility collection to w as a Parquet file.
func WriteParquet(w io.Writer, facilities []model.Facility) error {
	pw := parquet.NewGenericWriter[model.FacilityParquetRow](w,
		parquet.Compression(&parquet.Snappy),
	)

	rows := make([]model.FacilityParquetRow, len(facilities))
	for i := range facilities {
		rows[i] = toParquetRow(&facilities[i])
	}

	if len(rows) > 0 {
		if _, err := pw.Write(rows); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

func toParquetRow(f *model.Facility) model.FacilityParquetRow {
	affiliations := make([]string, len(f.Affiliations))
	for i, a := range f.Affiliations {
		affiliations[i] = string(a)
	}
	return model.FacilityParquetRow{
		ID:               f.ID,
		Name:             f.Name,
		OrganizationType: f.OrganizationType,
		FacilityType:     string(f.FacilityType),
		OperatorType:     string(f.OperatorType),
		Affiliations:     strings.Join(affiliations, "; "),

		Address:     f.Address,
		City:        f.City,
		Region:      f.Region,
		Country:     f.Country,
		CountryCode: f.CountryCode,

		PhoneNumbers: strings.Join(f.PhoneNumbers, "; "),
		Email:        f.Email,
		Website:      f.Website,

		Specialties:  strings.Join(f.Specialties, "; "),
		Procedures:   strings.Join(f.Procedures, "; "),
		Equipment:    strings.Join(f.Equipment, "; "),
		Capabilities: strings.Join(f.Capabilities, "; "),

		Description:       f.Description,
		YearEstablished:   toInt32(f.YearEstablished),
		NumberOfDoctors:   toInt32(f.NumberOfDoctors),
		BedCapacity:       toInt32(f.BedCapacity),
		AcceptsVolunteers: f.AcceptsVolunteers,

		HasCompleteAddress: f.HasCompleteAddress,
		HasContactInfo:     f.HasContactInfo,
		HasMedicalData:     f.HasMedicalData,
		HasCapacityData:    f.HasCapacityData,
		CompletenessScore:  int32(f.DataCompletenessScore),

		SourceURL: f.SourceURL,
	}
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	x := int32(*v)
	return &x
}
