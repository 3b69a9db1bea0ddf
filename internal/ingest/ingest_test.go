package ingest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/octobees/roofcompare/internal/entity"
)

const sampleHeader = "name,city,state,phone,website,address,description,services\n"

func TestTransform_RoundTrip(t *testing.T) {
	csv := sampleHeader +
		`"Acme Co","Austin","Texas","(512) 555-0100","https://acme.com","123 Main","Great service","10:$250-$350|20:$350-$500"` + "\n"

	result, err := Transform(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Companies) != 1 {
		t.Fatalf("expected 1 company, got %d", len(result.Companies))
	}

	c := result.Companies[0]
	if c.Slug != "acme-co-austin" {
		t.Fatalf("expected slug acme-co-austin, got %q", c.Slug)
	}
	if c.StateSlug != "texas" || c.CitySlug != "austin" {
		t.Fatalf("unexpected location slugs: %q/%q", c.StateSlug, c.CitySlug)
	}
	if c.Phone != "(512) 555-0100" {
		t.Fatalf("expected phone preserved, got %q", c.Phone)
	}
	if c.Website != "https://acme.com" {
		t.Fatalf("unexpected website %q", c.Website)
	}
	want := []entity.ServiceTier{{Value: 10, PriceRange: "$250-$350"}, {Value: 20, PriceRange: "$350-$500"}}
	if len(c.Services) != 2 || c.Services[0] != want[0] || c.Services[1] != want[1] {
		t.Fatalf("unexpected services: %+v", c.Services)
	}
	if c.Verified {
		t.Fatalf("expected verified default false")
	}
	if !c.PricingEstimated {
		t.Fatalf("expected pricing_estimated default true")
	}
	if c.ServiceAreaMiles != 25 {
		t.Fatalf("expected default service area, got %d", c.ServiceAreaMiles)
	}
}

func TestTransform_NonNumericTierDropped(t *testing.T) {
	csv := sampleHeader +
		`"Acme Co","Austin","Texas",,,,,"x:$100|2:$300-$1,500"` + "\n"

	result, err := Transform(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("expected no row error, got %v", err)
	}
	c := result.Companies[0]
	if len(c.Services) != 1 || c.Services[0].Value != 2 {
		t.Fatalf("expected only the numeric tier to survive, got %+v", c.Services)
	}
	if len(result.Report.Warnings) != 1 {
		t.Fatalf("expected dropped entry to be reported, got %+v", result.Report.Warnings)
	}
	if !strings.Contains(result.Report.Warnings[0].Message, "x:$100") {
		t.Fatalf("warning should name the dropped entry: %q", result.Report.Warnings[0].Message)
	}
}

func TestTransform_SkipsRowsMissingNameOrCity(t *testing.T) {
	csv := sampleHeader +
		`,"Austin","Texas",,,,,` + "\n" +
		`"Acme Co",,"Texas",,,,,` + "\n" +
		`"Kept Co","Austin","Texas",,,,,` + "\n"

	result, err := Transform(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Companies) != 1 || result.Companies[0].Name != "Kept Co" {
		t.Fatalf("expected only the valid row to survive, got %+v", result.Companies)
	}
	if result.Report.Rows != 3 {
		t.Fatalf("expected 3 rows counted, got %d", result.Report.Rows)
	}
	if len(result.Report.Warnings) != 2 {
		t.Fatalf("expected 2 skip warnings, got %+v", result.Report.Warnings)
	}
}

func TestTransform_DuplicateSlugWarning(t *testing.T) {
	csv := sampleHeader +
		`"Acme Co","Austin","Texas",,,,,` + "\n" +
		`"Acme Co","Austin","Texas",,,,,` + "\n"

	result, err := Transform(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Companies) != 2 {
		t.Fatalf("duplicates are kept in the dataset, got %d", len(result.Companies))
	}
	if len(result.Report.Warnings) != 1 || !strings.Contains(result.Report.Warnings[0].Message, "acme-co-austin") {
		t.Fatalf("expected duplicate slug warning, got %+v", result.Report.Warnings)
	}
}

func TestTransform_CityIndexFirstSeenUnique(t *testing.T) {
	csv := sampleHeader +
		`"A","Austin","Texas",,,,,` + "\n" +
		`"B","Denver","Colorado",,,,,` + "\n" +
		`"C","Austin","Texas",,,,,` + "\n"

	result, err := Transform(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Cities) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(result.Cities))
	}
	if result.Cities[0].CitySlug != "austin" || result.Cities[1].CitySlug != "denver" {
		t.Fatalf("expected first-seen order, got %+v", result.Cities)
	}
	if result.Report.Cities != 2 || result.Report.Companies != 3 {
		t.Fatalf("unexpected report: %+v", result.Report)
	}
}

func TestTransform_Validation(t *testing.T) {
	tests := map[string]struct {
		csv         string
		expectError string
	}{
		"empty file":      {csv: "", expectError: "csv file is empty"},
		"missing columns": {csv: "name,city\nAcme,Austin\n", expectError: "missing required columns: state"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Transform(strings.NewReader(tc.csv))
			if err == nil {
				t.Fatalf("expected error")
			}
			var valErr CSVValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected validation error, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Fatalf("expected %q in error, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestParseServices_EmptyAndBlankEntries(t *testing.T) {
	services, dropped := parseServices("")
	if len(services) != 0 || dropped != nil {
		t.Fatalf("expected empty result for empty input")
	}

	services, dropped = parseServices("|1:$100||")
	if len(services) != 1 || services[0].Value != 1 {
		t.Fatalf("blank entries should be ignored, got %+v", services)
	}
	if dropped != nil {
		t.Fatalf("expected no drops, got %v", dropped)
	}
}

func TestSanitizeWebsite(t *testing.T) {
	if got, ok := sanitizeWebsite("acme.com"); !ok || got != "https://acme.com" {
		t.Fatalf("expected https default, got %q ok=%v", got, ok)
	}
	if got, ok := sanitizeWebsite("http://acme.com/path"); !ok || got != "http://acme.com/path" {
		t.Fatalf("expected existing scheme kept, got %q ok=%v", got, ok)
	}
	if got, ok := sanitizeWebsite(""); !ok || got != "" {
		t.Fatalf("empty input is usable and empty, got %q ok=%v", got, ok)
	}
	if _, ok := sanitizeWebsite("https://"); ok {
		t.Fatalf("expected hostless URL rejected")
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := normalizePhone("512-555-0100"); got != "(512) 555-0100" && got != "512-555-0100" {
		t.Fatalf("unexpected normalization %q", got)
	}
	if got := normalizePhone("not a phone"); got != "not a phone" {
		t.Fatalf("unparseable input must be kept verbatim, got %q", got)
	}
	if got := normalizePhone(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	companies := []entity.Company{{Name: "Acme", Slug: "acme-austin", City: "Austin", State: "Texas", CitySlug: "austin", StateSlug: "texas", Services: []entity.ServiceTier{}}}
	cities := buildCityIndex(companies)

	datasetPath := filepath.Join(dir, "data", "companies.json")
	indexPath := filepath.Join(dir, "data", "cities-index.json")

	if err := WriteDataset(datasetPath, companies); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	if err := WriteCityIndex(indexPath, cities); err != nil {
		t.Fatalf("write index: %v", err)
	}

	raw, err := os.ReadFile(datasetPath)
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	var decoded []entity.Company
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode dataset: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Slug != "acme-austin" {
		t.Fatalf("unexpected dataset content: %+v", decoded)
	}

	raw, err = os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	var index []CityIndexEntry
	if err := json.Unmarshal(raw, &index); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	if len(index) != 1 || index[0].CitySlug != "austin" {
		t.Fatalf("unexpected index content: %+v", index)
	}
}
