package export

// Workbook sheet names, in output order.
const (
	SheetSummary     = "Summary"
	SheetFacilities  = "All Facilities"
	SheetRegions     = "Region Analysis"
	SheetQuality     = "Data Quality Issues"
	SheetHospitals   = "Hospitals"
	SheetSpecialties = "Specialties"
)

// AllSheets lists every sheet the workbook export can produce.
var AllSheets = []string{
	SheetSummary,
	SheetFacilities,
	SheetRegions,
	SheetQuality,
	SheetHospitals,
	SheetSpecialties,
}

// ValidSheet reports whether name is a known workbook sheet.
func ValidSheet(name string) bool {
	for _, s := range AllSheets {
		if s == name {
			return true
		}
	}
	return false
}
