package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"github.com/octobees/roofcompare/internal/entity"
)

// CSVValidationError indicates that the provided CSV payload is invalid.
type CSVValidationError struct {
	Message string
}

// Error implements the error interface.
func (e CSVValidationError) Error() string {
	return e.Message
}

// Warning records a row that was skipped or degraded during ingestion. The
// transform is best-effort on dirty input, but nothing is dropped silently.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Report summarises an ingestion run.
type Report struct {
	Rows      int       `json:"rows"`
	Companies int       `json:"companies"`
	Cities    int       `json:"cities"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

// CityIndexEntry is one row of the derived autocomplete index.
type CityIndexEntry struct {
	City      string `json:"city"`
	CitySlug  string `json:"city_slug"`
	State     string `json:"state"`
	StateSlug string `json:"state_slug"`
}

// Result carries the dataset, the derived city index, and the run report.
type Result struct {
	Companies []entity.Company
	Cities    []CityIndexEntry
	Report    Report
}

const defaultServiceAreaMiles = 25

var requiredCSVHeaders = []string{"name", "city", "state"}

// Transform reads a delimited file with a header row and produces the company
// dataset plus the derived city index. Quoted fields may contain the
// delimiter. Rows missing a name or city are skipped with a warning; rows
// with unparseable optional fields are kept in degraded form.
func Transform(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, CSVValidationError{Message: "csv file is empty"}
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index, err := buildHeaderIndex(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	seenSlugs := make(map[string]int)
	rowNum := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		rowNum++
		result.Report.Rows++

		name := field(row, index, "name")
		city := field(row, index, "city")
		if name == "" || city == "" {
			result.Report.Warnings = append(result.Report.Warnings, Warning{
				Row:     rowNum,
				Message: "missing required name or city, row skipped",
			})
			continue
		}

		services, dropped := parseServices(field(row, index, "services"))
		for _, entry := range dropped {
			result.Report.Warnings = append(result.Report.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("service entry %q has a non-numeric tier, entry dropped", entry),
			})
		}

		website, ok := sanitizeWebsite(field(row, index, "website"))
		if !ok {
			result.Report.Warnings = append(result.Report.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("website %q is not a usable URL, field cleared", field(row, index, "website")),
			})
		}

		company := entity.Company{
			Name:             name,
			Slug:             slug.Make(name + "-" + city),
			City:             city,
			State:            field(row, index, "state"),
			StateSlug:        slug.Make(field(row, index, "state")),
			CitySlug:         slug.Make(city),
			Phone:            normalizePhone(field(row, index, "phone")),
			Website:          website,
			Address:          field(row, index, "address"),
			Description:      field(row, index, "description"),
			Services:         services,
			Amenities:        []string{},
			ServiceAreaMiles: defaultServiceAreaMiles,
			Verified:         field(row, index, "verified") == "true",
			PricingEstimated: field(row, index, "pricing_estimated") != "false",
		}

		if firstRow, dup := seenSlugs[company.Slug]; dup {
			result.Report.Warnings = append(result.Report.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("slug %q duplicates row %d and will be shadowed in lookups", company.Slug, firstRow),
			})
		} else {
			seenSlugs[company.Slug] = rowNum
		}

		result.Companies = append(result.Companies, company)
	}

	result.Cities = buildCityIndex(result.Companies)
	result.Report.Companies = len(result.Companies)
	result.Report.Cities = len(result.Cities)

	return result, nil
}

func buildHeaderIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, required := range requiredCSVHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, CSVValidationError{Message: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))}
	}
	return index, nil
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseServices decodes the pipe-separated "tier:price_range" mini-grammar.
// Entries whose tier fails integer parsing are returned as dropped.
func parseServices(raw string) ([]entity.ServiceTier, []string) {
	if raw == "" {
		return []entity.ServiceTier{}, nil
	}

	var (
		services []entity.ServiceTier
		dropped  []string
	)
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tierText, priceRange, _ := strings.Cut(part, ":")
		value, err := strconv.Atoi(strings.TrimSpace(tierText))
		if err != nil {
			dropped = append(dropped, part)
			continue
		}
		services = append(services, entity.ServiceTier{Value: value, PriceRange: priceRange})
	}
	if services == nil {
		services = []entity.ServiceTier{}
	}
	return services, dropped
}

func buildCityIndex(companies []entity.Company) []CityIndexEntry {
	seen := make(map[string]struct{})
	var cities []CityIndexEntry
	for _, c := range companies {
		key := c.StateSlug + "/" + c.CitySlug
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, CityIndexEntry{
			City:      c.City,
			CitySlug:  c.CitySlug,
			State:     c.State,
			StateSlug: c.StateSlug,
		})
	}
	return cities
}
