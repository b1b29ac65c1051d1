// Package export flattens pipeline output into multi-sheet workbooks and
// Parquet files. Pure formatting: no derived state beyond what the sheets
// display.
package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/model"
)

// workbookEmergencyKeywords is the Region Analysis sheet's own keyword set,
// narrower again than both pipeline sets. Inherited from the upstream
// exporter and kept so exported reports match it.
var workbookEmergencyKeywords = []string{"emergency", "24/7", "24 hour", "trauma"}

// Workbook renders the selected sheets into a new workbook. sheets must be
// a subset of AllSheets; an empty slice means all of them.
func Workbook(res *dataset.Result, sheets []string) (*excelize.File, error) {
	if len(sheets) == 0 {
		sheets = AllSheets
	}

	f := excelize.NewFile()
	for i, name := range sheets {
		if !ValidSheet(name) {
			f.Close()
			return nil, fmt.Errorf("unknown sheet %q", name)
		}
		if i == 0 {
			// Rename the default sheet instead of leaving an empty Sheet1.
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename default sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		var err error
		switch name {
		case SheetSummary:
			err = writeRows(f, name, []string{"Metric", "Value"}, summaryRows(&res.Summary))
		case SheetFacilities:
			err = writeRows(f, name, facilityHeaders, facilityRows(res.Facilities, ""))
		case SheetRegions:
			err = writeRows(f, name, regionHeaders, regionRows(res.Facilities))
		case SheetQuality:
			err = writeRows(f, name, qualityHeaders, qualityRows(res.Facilities))
		case SheetHospitals:
			err = writeRows(f, name, facilityHeaders, facilityRows(res.Facilities, model.TypeHospital))
		case SheetSpecialties:
			err = writeRows(f, name, specialtyHeaders, specialtyRows(res.Facilities))
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("write sheet %q: %w", name, err)
		}
	}
	return f, nil
}

// WriteWorkbook renders the workbook and streams it to w.
func WriteWorkbook(w io.Writer, res *dataset.Result, sheets []string) error {
	f, err := Workbook(res, sheets)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

var facilityHeaders = []string{
	"ID", "Name", "Organization Type", "Facility Type", "Operator Type", "Affiliations",
	"Full Address", "City", "Region", "Country", "Country Code",
	"Phone Numbers", "Email", "Website",
	"Specialties", "Procedures", "Equipment", "Capabilities",
	"Description", "Year Established", "Number of Doctors", "Bed Capacity", "Accepts Volunteers",
	"Has Complete Address", "Has Contact Info", "Has Medical Data", "Has Capacity Data",
	"Data Completeness Score (%)", "Source URL",
}

func facilityRows(facilities []model.Facility, only model.FacilityType) [][]any {
	var rows [][]any
	for i := range facilities {
		f := &facilities[i]
		if only != "" && f.FacilityType != only {
			continue
		}
		affiliations := make([]string, len(f.Affiliations))
		for j, a := range f.Affiliations {
			affiliations[j] = string(a)
		}
		rows = append(rows, []any{
			f.ID, f.Name, f.OrganizationType, string(f.FacilityType), string(f.OperatorType),
			strings.Join(affiliations, "; "),
			f.Address, f.City, f.Region, f.Country, f.CountryCode,
			strings.Join(f.PhoneNumbers, "; "), strOrEmpty(f.Email), strOrEmpty(f.Website),
			strings.Join(f.Specialties, "; "), strings.Join(f.Procedures, "; "),
			strings.Join(f.Equipment, "; "), strings.Join(f.Capabilities, "; "),
			strOrEmpty(f.Description), intOrEmpty(f.YearEstablished),
			intOrEmpty(f.NumberOfDoctors), intOrEmpty(f.BedCapacity), boolOrEmpty(f.AcceptsVolunteers),
			f.HasCompleteAddress, f.HasContactInfo, f.HasMedicalData, f.HasCapacityData,
			f.DataCompletenessScore, strOrEmpty(f.SourceURL),
		})
	}
	return rows
}

func summaryRows(s *model.DataSummary) [][]any {
	rows := [][]any{
		{"OVERVIEW", ""},
		{"Total Facilities", s.TotalFacilities},
		{"Average Data Completeness", fmt.Sprintf("%d%%", s.AverageCompletenessScore)},
		{"Facilities with Incomplete Data (<50%)", s.FacilitiesWithIncompleteData},
		{"Facilities with No Medical Data", s.FacilitiesWithNoMedicalData},
		{"", ""},
		{"MEDICAL DESERTS ANALYSIS", ""},
		{"Facilities with Doctor Count", s.FacilitiesWithDoctors},
		{"Facilities with Bed Capacity", s.FacilitiesWithBeds},
		{"Facilities with Emergency Capability", s.FacilitiesWithEmergencyCapability},
		{"", ""},
		{"BY FACILITY TYPE", ""},
	}
	for _, t := range model.AllFacilityTypes {
		label := strings.ToUpper(string(t)[:1]) + string(t)[1:]
		rows = append(rows, []any{"  " + label, s.ByFacilityType[t]})
	}
	rows = append(rows, []any{"", ""}, []any{"TOP REGIONS", ""})
	for _, e := range topEntries(s.ByRegion, 15) {
		rows = append(rows, []any{"  " + e.key, e.count})
	}
	rows = append(rows, []any{"", ""}, []any{"TOP SPECIALTIES", ""})
	for _, e := range topEntries(s.BySpecialty, 20) {
		rows = append(rows, []any{"  " + e.key, e.count})
	}
	return rows
}

var regionHeaders = []string{
	"Region", "Total Facilities", "Hospitals", "Clinics",
	"With Doctor Count", "With Bed Capacity", "With Emergency Services",
	"Avg Data Completeness (%)", "Medical Desert Risk",
}

// regionRows tallies regions with the workbook's own keyword set and
// three-level risk labels rather than reusing the four-tier classifier.
func regionRows(facilities []model.Facility) [][]any {
	type tally struct {
		total, hospitals, clinics            int
		withDoctors, withBeds, withEmergency int
		totalCompleteness                    int
	}
	groups := make(map[string]*tally)
	for i := range facilities {
		f := &facilities[i]
		g, ok := groups[f.GroupKey()]
		if !ok {
			g = &tally{}
			groups[f.GroupKey()] = g
		}
		g.total++
		if f.FacilityType == model.TypeHospital {
			g.hospitals++
		}
		if f.FacilityType == model.TypeClinic {
			g.clinics++
		}
		if f.NumberOfDoctors != nil && *f.NumberOfDoctors > 0 {
			g.withDoctors++
		}
		if f.BedCapacity != nil && *f.BedCapacity > 0 {
			g.withBeds++
		}
		if dataset.HasEmergencyCapability(f, workbookEmergencyKeywords) {
			g.withEmergency++
		}
		g.totalCompleteness += f.DataCompletenessScore
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if groups[names[i]].total != groups[names[j]].total {
			return groups[names[i]].total > groups[names[j]].total
		}
		return names[i] < names[j]
	})

	rows := make([][]any, 0, len(names))
	for _, name := range names {
		g := groups[name]
		risk := "LOW"
		if g.withEmergency == 0 {
			risk = "HIGH"
		} else if g.hospitals == 0 {
			risk = "MEDIUM"
		}
		rows = append(rows, []any{
			name, g.total, g.hospitals, g.clinics,
			g.withDoctors, g.withBeds, g.withEmergency,
			int(math.Round(float64(g.totalCompleteness) / float64(g.total))), risk,
		})
	}
	return rows
}

var qualityHeaders = []string{
	"ID", "Name", "City", "Completeness Score (%)",
	"Has Address", "Has Contact", "Has Medical Data", "Has Capacity Data", "Issues",
}

func qualityRows(facilities []model.Facility) [][]any {
	var flagged []*model.Facility
	for i := range facilities {
		f := &facilities[i]
		if f.DataCompletenessScore < 50 || !f.HasMedicalData {
			flagged = append(flagged, f)
		}
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].DataCompletenessScore < flagged[j].DataCompletenessScore
	})

	rows := make([][]any, 0, len(flagged))
	for _, f := range flagged {
		var issues []string
		if !f.HasCompleteAddress {
			issues = append(issues, "Missing Address")
		}
		if !f.HasContactInfo {
			issues = append(issues, "No Contact Info")
		}
		if !f.HasMedicalData {
			issues = append(issues, "No Medical Data")
		}
		if !f.HasCapacityData {
			issues = append(issues, "No Capacity Data")
		}
		rows = append(rows, []any{
			f.ID, f.Name, f.City, f.DataCompletenessScore,
			yesNo(f.HasCompleteAddress), yesNo(f.HasContactInfo),
			yesNo(f.HasMedicalData), yesNo(f.HasCapacityData),
			strings.Join(issues, "; "),
		})
	}
	return rows
}

var specialtyHeaders = []string{"Specialty", "Facility Count", "Sample Facilities"}

func specialtyRows(facilities []model.Facility) [][]any {
	type entry struct {
		count   int
		samples []string
	}
	bySpecialty := make(map[string]*entry)
	for i := range facilities {
		f := &facilities[i]
		for _, s := range f.Specialties {
			e, ok := bySpecialty[s]
			if !ok {
				e = &entry{}
				bySpecialty[s] = e
			}
			e.count++
			if len(e.samples) < 5 {
				e.samples = append(e.samples, f.Name)
			}
		}
	}

	names := make([]string, 0, len(bySpecialty))
	for name := range bySpecialty {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if bySpecialty[names[i]].count != bySpecialty[names[j]].count {
			return bySpecialty[names[i]].count > bySpecialty[names[j]].count
		}
		return names[i] < names[j]
	})

	rows := make([][]any, 0, len(names))
	for _, name := range names {
		e := bySpecialty[name]
		rows = append(rows, []any{name, e.count, strings.Join(e.samples, "; ")})
	}
	return rows
}

type countedEntry struct {
	key   string
	count int
}

func topEntries(m map[string]int, limit int) []countedEntry {
	entries := make([]countedEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, countedEntry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func boolOrEmpty(v *bool) any {
	if v == nil {
		return ""
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
