// internal/metadata/sample.go
package metadata

// NewSampleCatalog returns a catalog seeded with a representative slice of
// SDTM and ADaM metadata. Enough breadth for condition building and tests;
// not an exhaustive implementation guide listing.
func NewSampleCatalog() *Catalog {
	datasets := []Dataset{
		{Name: "DM", Label: "Demographics", Domain: "SDTM"},
		{Name: "AE", Label: "Adverse Events", Domain: "SDTM"},
		{Name: "LB", Label: "Laboratory Test Results", Domain: "SDTM"},
		{Name: "VS", Label: "Vital Signs", Domain: "SDTM"},
		{Name: "ADSL", Label: "Subject-Level Analysis Dataset", Domain: "ADaM"},
	}

	variables := map[string][]Variable{
		"DM": {
			{Name: "USUBJID", Label: "Unique Subject Identifier", Type: "Char"},
			{Name: "AGE", Label: "Age", Type: "Num"},
			{Name: "SEX", Label: "Sex", Type: "Char"},
			{Name: "RACE", Label: "Race", Type: "Char"},
			{Name: "COUNTRY", Label: "Country", Type: "Char"},
			{Name: "ARMCD", Label: "Planned Arm Code", Type: "Char"},
		},
		"AE": {
			{Name: "USUBJID", Label: "Unique Subject Identifier", Type: "Char"},
			{Name: "AETERM", Label: "Reported Term for the Adverse Event", Type: "Char"},
			{Name: "AESEV", Label: "Severity/Intensity", Type: "Char"},
			{Name: "AESER", Label: "Serious Event", Type: "Char"},
			{Name: "AESTDTC", Label: "Start Date/Time of Adverse Event", Type: "Char"},
		},
		"LB": {
			{Name: "USUBJID", Label: "Unique Subject Identifier", Type: "Char"},
			{Name: "LBTESTCD", Label: "Lab Test Short Name", Type: "Char"},
			{Name: "LBSTRESN", Label: "Numeric Result in Standard Units", Type: "Num"},
			{Name: "LBNRIND", Label: "Reference Range Indicator", Type: "Char"},
		},
		"VS": {
			{Name: "USUBJID", Label: "Unique Subject Identifier", Type: "Char"},
			{Name: "VSTESTCD", Label: "Vital Signs Test Short Name", Type: "Char"},
			{Name: "VSSTRESN", Label: "Numeric Result in Standard Units", Type: "Num"},
		},
		"ADSL": {
			{Name: "USUBJID", Label: "Unique Subject Identifier", Type: "Char"},
			{Name: "SAFFL", Label: "Safety Population Flag", Type: "Char"},
			{Name: "ITTFL", Label: "Intent-To-Treat Population Flag", Type: "Char"},
			{Name: "AGE", Label: "Age", Type: "Num"},
			{Name: "TRT01P", Label: "Planned Treatment for Period 01", Type: "Char"},
			{Name: "RANDDT", Label: "Date of Randomization", Type: "Num"},
		},
	}

	values := map[string][]string{
		"DM.SEX":      {"F", "M", "U"},
		"DM.ARMCD":    {"PLA", "TRT"},
		"AE.AESEV":    {"MILD", "MODERATE", "SEVERE"},
		"AE.AESER":    {"N", "Y"},
		"LB.LBNRIND":  {"NORMAL", "LOW", "HIGH"},
		"ADSL.SAFFL":  {"Y", "N"},
		"ADSL.ITTFL":  {"Y", "N"},
		"ADSL.TRT01P": {"Placebo", "Drug 10mg", "Drug 20mg"},
	}

	return NewCatalog(datasets, variables, values)
}
