package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

type homeFixture struct {
	Heading        string
	Cities         []entity.City
	TotalCompanies int
}

func renderHome(t *testing.T, r *Renderer) string {
	t.Helper()

	var buf strings.Builder
	view := View{
		Site:        r.site,
		Title:       "RoofCompare",
		Description: "Compare roofing contractors",
		Canonical:   "https://roofcompare.us/",
		Page: homeFixture{
			Heading:        "Find a Roofer",
			Cities:         []entity.City{{City: "Austin", CitySlug: "austin", State: "TX", StateSlug: "tx", Count: 2}},
			TotalCompanies: 2,
		},
	}
	if err := r.Render(&buf, "home", view, nil); err != nil {
		t.Fatalf("failed to render home: %v", err)
	}
	return buf.String()
}

func TestRenderer_Home(t *testing.T) {
	r, err := New(siteconfig.Default())
	if err != nil {
		t.Fatalf("failed to compile templates: %v", err)
	}

	body := renderHome(t, r)
	if !strings.Contains(body, "<title>RoofCompare</title>") {
		t.Fatalf("expected title in head")
	}
	if !strings.Contains(body, "Find a Roofer") {
		t.Fatalf("expected page heading rendered")
	}
	if !strings.Contains(body, `href="/tx/austin"`) {
		t.Fatalf("expected city link rendered")
	}
	if strings.Contains(body, "posthogApiKey") {
		t.Fatalf("analytics snippet must be absent by default")
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := New(siteconfig.Default())
	if err != nil {
		t.Fatalf("failed to compile templates: %v", err)
	}

	var buf strings.Builder
	if err := r.Render(&buf, "nope", View{Site: r.site}, nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRenderer_Analytics(t *testing.T) {
	r, err := New(siteconfig.Default())
	if err != nil {
		t.Fatalf("failed to compile templates: %v", err)
	}
	r.EnableAnalytics("phc_test123", "https://us.i.posthog.com")

	body := renderHome(t, r)
	if !strings.Contains(body, "phc_test123") {
		t.Fatalf("expected analytics key in layout")
	}
	if !strings.Contains(body, "us.i.posthog.com") {
		t.Fatalf("expected analytics host in layout")
	}
}

func TestCompanyJSONLD(t *testing.T) {
	site := siteconfig.Default()
	company := entity.Company{
		Name:        "Summit Roofing",
		Slug:        "summit-roofing-austin",
		City:        "Austin",
		State:       "TX",
		Phone:       "(512) 555-0100",
		Website:     "https://summit.example.com",
		Rating:      4.8,
		ReviewCount: 120,
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(CompanyJSONLD(site, company)), &doc); err != nil {
		t.Fatalf("structured data is not valid JSON: %v", err)
	}
	if doc["@type"] != "LocalBusiness" {
		t.Fatalf("expected LocalBusiness, got %v", doc["@type"])
	}
	if doc["name"] != "Summit Roofing" {
		t.Fatalf("expected company name, got %v", doc["name"])
	}
	if doc["telephone"] != "(512) 555-0100" {
		t.Fatalf("expected telephone, got %v", doc["telephone"])
	}
}

func TestCityJSONLD(t *testing.T) {
	site := siteconfig.Default()
	companies := []entity.Company{
		{Name: "A Roofing", Slug: "a-roofing-austin", City: "Austin", State: "TX"},
		{Name: "B Roofing", Slug: "b-roofing-austin", City: "Austin", State: "TX"},
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(CityJSONLD(site, "Austin", "TX", companies)), &doc); err != nil {
		t.Fatalf("structured data is not valid JSON: %v", err)
	}
	if doc["@type"] != "ItemList" {
		t.Fatalf("expected ItemList, got %v", doc["@type"])
	}
	items, ok := doc["itemListElement"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 list items, got %v", doc["itemListElement"])
	}
}
