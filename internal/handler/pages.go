package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/content"
	"github.com/octobees/roofcompare/internal/directory"
	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/render"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

// PagesHandler renders the server-side HTML pages.
type PagesHandler struct {
	store   *directory.Store
	site    *siteconfig.Config
	baseURL string
}

// NewPagesHandler wires the page handler against the dataset and site config.
func NewPagesHandler(store *directory.Store, site *siteconfig.Config, baseURL string) *PagesHandler {
	return &PagesHandler{store: store, site: site, baseURL: baseURL}
}

// HomePage feeds the home template.
type HomePage struct {
	Heading        string
	Cities         []entity.City
	TotalCompanies int
}

// CityPage feeds the city listing template.
type CityPage struct {
	StateName string
	Heading   string
	Companies []entity.Company

	site *siteconfig.Config
}

// ServiceLabel resolves a tier value against the service catalog. Unknown
// tiers return the empty string and the template falls back to a generic
// label.
func (p CityPage) ServiceLabel(value int) string {
	if opt, ok := p.site.ServiceOptionByValue(value); ok {
		return opt.Label
	}
	return ""
}

// ServiceView is one service row on the company page, already joined with
// the catalog entry for that tier.
type ServiceView struct {
	Icon        string
	Label       string
	Description string
	PriceRange  string
}

// CompanyPage feeds the company profile template.
type CompanyPage struct {
	Company         entity.Company
	Services        []ServiceView
	QuoteSubheading string
}

// BlogIndexPage feeds the blog index template.
type BlogIndexPage struct {
	Heading    string
	Subheading string
	Posts      []content.Post
}

// BlogPostPage feeds a single blog article.
type BlogPostPage struct {
	BlogTitle string
	Post      content.Post
}

// GuidesPage feeds the guides index template.
type GuidesPage struct {
	Guides []content.Guide
}

// GuidePage feeds a single guide.
type GuidePage struct {
	Guide content.Guide
}

// Home handles GET /.
func (h *PagesHandler) Home(c echo.Context) error {
	cities := h.store.Cities()
	view := render.View{
		Site:        h.site,
		Title:       h.site.Name + " — " + h.site.Tagline,
		Description: h.site.Description,
		Canonical:   h.baseURL + "/",
		OGImage:     h.baseURL + "/og/home",
		Page: HomePage{
			Heading:        h.site.Render(h.site.Hero.Heading, nil),
			Cities:         cities,
			TotalCompanies: h.store.Len(),
		},
	}
	return c.Render(http.StatusOK, "home", view)
}

// City handles GET /:state/:city.
func (h *PagesHandler) City(c echo.Context) error {
	stateSlug := c.Param("state")
	citySlug := c.Param("city")

	companies := h.store.ByCity(stateSlug, citySlug)
	if len(companies) == 0 {
		return h.NotFound(c)
	}

	cityName := companies[0].City
	stateName := companies[0].State
	vars := map[string]string{
		"city":           cityName,
		"state":          stateName,
		"count":          strconv.Itoa(len(companies)),
		"industryPlural": h.site.Industry.Plural,
	}

	view := render.View{
		Site:        h.site,
		Title:       h.site.Render(h.site.SEO.CityTitle, vars),
		Description: h.site.Render(h.site.SEO.CityDescription, vars),
		Canonical:   fmt.Sprintf("%s/%s/%s", h.baseURL, stateSlug, citySlug),
		OGImage:     fmt.Sprintf("%s/og/%s/%s", h.baseURL, stateSlug, citySlug),
		JSONLD:      render.CityJSONLD(h.site, cityName, stateName, companies),
		Page: CityPage{
			StateName: stateName,
			Heading:   fmt.Sprintf("%s in %s, %s", h.site.Industry.Plural, cityName, stateName),
			Companies: companies,
			site:      h.site,
		},
	}
	return c.Render(http.StatusOK, "city", view)
}

// Company handles GET /company/:slug.
func (h *PagesHandler) Company(c echo.Context) error {
	company, ok := h.store.BySlug(c.Param("slug"))
	if !ok {
		return h.NotFound(c)
	}

	vars := map[string]string{
		"companyName": company.Name,
		"city":        company.City,
		"state":       company.State,
	}

	view := render.View{
		Site:        h.site,
		Title:       h.site.Render(h.site.SEO.CompanyTitle, vars),
		Description: h.site.Render(h.site.SEO.CompanyDescription, vars),
		Canonical:   h.baseURL + "/company/" + company.Slug,
		OGImage:     h.baseURL + "/og/" + company.Slug,
		JSONLD:      render.CompanyJSONLD(h.site, company),
		Page: CompanyPage{
			Company:         company,
			Services:        h.serviceViews(company),
			QuoteSubheading: h.site.Render(h.site.QuoteForm.Subheading, vars),
		},
	}
	return c.Render(http.StatusOK, "company", view)
}

// serviceViews joins the company's service entries with the catalog. Tier
// price ranges on the company win over the catalog's typical range.
func (h *PagesHandler) serviceViews(company entity.Company) []ServiceView {
	views := make([]ServiceView, 0, len(company.Services))
	for _, tier := range company.Services {
		view := ServiceView{
			Label:      fmt.Sprintf("Tier %d", tier.Value),
			PriceRange: tier.PriceRange,
		}
		if opt, ok := h.site.ServiceOptionByValue(tier.Value); ok {
			view.Icon = opt.Icon
			view.Label = opt.Label
			view.Description = opt.Description
			if view.PriceRange == "" {
				view.PriceRange = opt.Capacity
			}
		}
		views = append(views, view)
	}
	return views
}

// BlogIndex handles GET /blog.
func (h *PagesHandler) BlogIndex(c echo.Context) error {
	view := render.View{
		Site:        h.site,
		Title:       h.site.Blog.Title + " | " + h.site.Name,
		Description: h.site.Blog.Description,
		Canonical:   h.baseURL + "/blog",
		OGImage:     h.baseURL + "/og/home",
		JSONLD:      render.BlogJSONLD(h.site, h.site.Blog.Title),
		Page: BlogIndexPage{
			Heading:    h.site.Blog.Title,
			Subheading: h.site.Blog.Description,
			Posts:      content.Posts(),
		},
	}
	return c.Render(http.StatusOK, "blog_index", view)
}

// BlogPost handles GET /blog/:slug.
func (h *PagesHandler) BlogPost(c echo.Context) error {
	post, ok := content.PostBySlug(c.Param("slug"))
	if !ok {
		return h.NotFound(c)
	}

	view := render.View{
		Site:        h.site,
		Title:       post.Title + " | " + h.site.Name,
		Description: post.Excerpt,
		Canonical:   h.baseURL + "/blog/" + post.Slug,
		OGImage:     h.baseURL + "/og/home",
		Page: BlogPostPage{
			BlogTitle: h.site.Blog.Title,
			Post:      post,
		},
	}
	return c.Render(http.StatusOK, "blog_post", view)
}

// GuidesIndex handles GET /guides.
func (h *PagesHandler) GuidesIndex(c echo.Context) error {
	view := render.View{
		Site:        h.site,
		Title:       fmt.Sprintf("%s Guides | %s", h.site.Industry.Singular, h.site.Name),
		Description: fmt.Sprintf("Step-by-step guides for hiring and working with %s.", h.site.Industry.CompanyNounPlural),
		Canonical:   h.baseURL + "/guides",
		OGImage:     h.baseURL + "/og/home",
		Page:        GuidesPage{Guides: content.Guides()},
	}
	return c.Render(http.StatusOK, "guides_index", view)
}

// Guide handles GET /guides/:slug.
func (h *PagesHandler) Guide(c echo.Context) error {
	guide, ok := content.GuideBySlug(c.Param("slug"))
	if !ok {
		return h.NotFound(c)
	}

	view := render.View{
		Site:        h.site,
		Title:       guide.Title + " | " + h.site.Name,
		Description: guide.Excerpt,
		Canonical:   h.baseURL + "/guides/" + guide.Slug,
		OGImage:     h.baseURL + "/og/home",
		Page:        GuidePage{Guide: guide},
	}
	return c.Render(http.StatusOK, "guide", view)
}

// NotFound renders the 404 page. It doubles as the router's fallback.
func (h *PagesHandler) NotFound(c echo.Context) error {
	view := render.View{
		Site:        h.site,
		Title:       "Page Not Found | " + h.site.Name,
		Description: h.site.Description,
	}
	return c.Render(http.StatusNotFound, "not_found", view)
}

// Search handles GET /search. The home page search box submits a free-text
// city; a match redirects to the city listing and anything else lands back
// on the home page.
func (h *PagesHandler) Search(c echo.Context) error {
	query := normalizeCityQuery(c.QueryParam("q"))
	if query != "" {
		for _, city := range h.store.Cities() {
			if normalizeCityQuery(city.City) == query ||
				normalizeCityQuery(city.City+", "+city.State) == query ||
				city.CitySlug == query {
				return c.Redirect(http.StatusFound, "/"+city.StateSlug+"/"+city.CitySlug)
			}
		}
	}
	return c.Redirect(http.StatusFound, "/")
}

func normalizeCityQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
