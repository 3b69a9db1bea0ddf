package handler

import (
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/content"
	"github.com/octobees/roofcompare/internal/directory"
)

func TestSitemapHandler_Sitemap(t *testing.T) {
	store := directory.NewStore(testCompanies())
	h := NewSitemapHandler(store, "https://roofcompare.us")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Sitemap(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("expected xml content type, got %q", ct)
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(rec.Body.Bytes(), &set); err != nil {
		t.Fatalf("failed to parse sitemap: %v", err)
	}

	wantCount := 3 + len(content.Posts()) + len(content.Guides()) + 2 + 3
	if len(set.URLs) != wantCount {
		t.Fatalf("expected %d urls, got %d", wantCount, len(set.URLs))
	}

	byLoc := make(map[string]sitemapURL, len(set.URLs))
	for _, u := range set.URLs {
		if u.LastMod == "" {
			t.Fatalf("expected lastmod on %s", u.Loc)
		}
		byLoc[u.Loc] = u
	}

	cases := []struct {
		loc        string
		priority   float64
		changeFreq string
	}{
		{"https://roofcompare.us/", 1.0, "weekly"},
		{"https://roofcompare.us/blog", 0.8, "weekly"},
		{"https://roofcompare.us/tx/austin", 0.9, "weekly"},
		{"https://roofcompare.us/co/denver", 0.9, "weekly"},
		{"https://roofcompare.us/company/summit-roofing-austin", 0.6, "monthly"},
		{"https://roofcompare.us/blog/" + content.Posts()[0].Slug, 0.7, "monthly"},
		{"https://roofcompare.us/guides/" + content.Guides()[0].Slug, 0.7, "monthly"},
	}
	for _, tc := range cases {
		u, ok := byLoc[tc.loc]
		if !ok {
			t.Fatalf("expected %s in sitemap", tc.loc)
		}
		if u.Priority != tc.priority {
			t.Fatalf("expected priority %.1f for %s, got %.1f", tc.priority, tc.loc, u.Priority)
		}
		if u.ChangeFreq != tc.changeFreq {
			t.Fatalf("expected changefreq %s for %s, got %s", tc.changeFreq, tc.loc, u.ChangeFreq)
		}
	}
}

func TestSitemapHandler_EmptyDataset(t *testing.T) {
	h := NewSitemapHandler(directory.NewStore(nil), "https://roofcompare.us")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Sitemap(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(rec.Body.Bytes(), &set); err != nil {
		t.Fatalf("failed to parse sitemap: %v", err)
	}
	if len(set.URLs) != 3+len(content.Posts())+len(content.Guides()) {
		t.Fatalf("expected only static and editorial urls, got %d", len(set.URLs))
	}
}
