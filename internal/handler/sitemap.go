package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/content"
	"github.com/octobees/roofcompare/internal/directory"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler serves /sitemap.xml over the full page inventory.
type SitemapHandler struct {
	store   *directory.Store
	baseURL string
}

// NewSitemapHandler wires the sitemap against the dataset.
func NewSitemapHandler(store *directory.Store, baseURL string) *SitemapHandler {
	return &SitemapHandler{store: store, baseURL: baseURL}
}

// Sitemap handles GET /sitemap.xml.
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	now := time.Now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: h.baseURL + "/", LastMod: now, ChangeFreq: "weekly", Priority: 1.0},
		{Loc: h.baseURL + "/blog", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
		{Loc: h.baseURL + "/guides", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
	}

	for _, post := range content.Posts() {
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/blog/" + post.Slug,
			LastMod:    now,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}
	for _, guide := range content.Guides() {
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/guides/" + guide.Slug,
			LastMod:    now,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	for _, city := range h.store.Cities() {
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/" + city.StateSlug + "/" + city.CitySlug,
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}
	for _, company := range h.store.All() {
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/company/" + company.Slug,
			LastMod:    now,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to build sitemap")
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
