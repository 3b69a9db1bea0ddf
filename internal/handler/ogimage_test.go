package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/directory"
	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

func newOGImageHandler(companies []entity.Company) *OGImageHandler {
	return NewOGImageHandler(directory.NewStore(companies), siteconfig.Default())
}

func TestOGImageHandler_Home(t *testing.T) {
	h := newOGImageHandler(testCompanies())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/og/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Home(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("expected svg content type, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<svg") || !strings.Contains(body, `width="1200" height="630"`) {
		t.Fatalf("expected 1200x630 svg, got %s", body[:80])
	}
	if !strings.Contains(body, "RoofCompare") {
		t.Fatalf("expected site name on home card")
	}
}

func TestOGImageHandler_Company(t *testing.T) {
	h := newOGImageHandler(testCompanies())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/og/summit-roofing-austin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("summit-roofing-austin")

	if err := h.Company(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Summit Roofing") {
		t.Fatalf("expected company name on card")
	}
	if !strings.Contains(body, "120 reviews") {
		t.Fatalf("expected review count on card")
	}
}

func TestOGImageHandler_Company_Unknown(t *testing.T) {
	h := newOGImageHandler(testCompanies())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/og/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	err := h.Company(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestOGImageHandler_City(t *testing.T) {
	h := newOGImageHandler(testCompanies())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/og/tx/austin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("state", "city")
	c.SetParamValues("tx", "austin")

	if err := h.City(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Austin") {
		t.Fatalf("expected city name on card")
	}
	if !strings.Contains(body, "Compare 2 local") {
		t.Fatalf("expected company count on card")
	}
}

func TestOGImageHandler_EscapesMarkup(t *testing.T) {
	companies := []entity.Company{{
		Name:      `Roofs <&> "Sons"`,
		Slug:      "roofs-and-sons-austin",
		City:      "Austin",
		State:     "TX",
		StateSlug: "tx",
		CitySlug:  "austin",
	}}
	h := newOGImageHandler(companies)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/og/roofs-and-sons-austin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("roofs-and-sons-austin")

	if err := h.Company(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, `Roofs <&>`) {
		t.Fatalf("expected markup characters escaped")
	}
	if !strings.Contains(body, "Roofs &lt;&amp;&gt;") {
		t.Fatalf("expected escaped company name, got %s", body)
	}
}
