package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/directory"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

// OGImageHandler renders the social share cards as SVG. Paths mirror the
// page inventory: /og/home, /og/:slug for companies, /og/:state/:city for
// city listings.
type OGImageHandler struct {
	store *directory.Store
	site  *siteconfig.Config
}

// NewOGImageHandler wires the share card endpoints.
func NewOGImageHandler(store *directory.Store, site *siteconfig.Config) *OGImageHandler {
	return &OGImageHandler{store: store, site: site}
}

// Home handles GET /og/home.
func (h *OGImageHandler) Home(c echo.Context) error {
	return h.respond(c, h.site.Name, h.site.Tagline, fmt.Sprintf("%d %s listed", h.store.Len(), h.site.Industry.CompanyNounPlural))
}

// Company handles GET /og/:slug.
func (h *OGImageHandler) Company(c echo.Context) error {
	company, ok := h.store.BySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown company")
	}

	detail := h.site.Industry.Singular
	if company.ReviewCount > 0 {
		detail = fmt.Sprintf("★ %.1f · %d reviews", company.Rating, company.ReviewCount)
	}
	return h.respond(c, company.Name, fmt.Sprintf("%s, %s", company.City, company.State), detail)
}

// City handles GET /og/:state/:city.
func (h *OGImageHandler) City(c echo.Context) error {
	companies := h.store.ByCity(c.Param("state"), c.Param("city"))
	if len(companies) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "unknown city")
	}

	noun := h.site.Industry.CompanyNounPlural
	if len(companies) == 1 {
		noun = h.site.Industry.CompanyNoun
	}
	title := fmt.Sprintf("%s in %s", h.site.Industry.Plural, companies[0].City)
	subtitle := fmt.Sprintf("%s, %s", companies[0].City, companies[0].State)
	return h.respond(c, title, subtitle, fmt.Sprintf("Compare %d local %s", len(companies), noun))
}

func (h *OGImageHandler) respond(c echo.Context, title, subtitle, detail string) error {
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(h.svg(title, subtitle, detail)))
}

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// svg lays out the 1200x630 share card with the configured theme palette.
func (h *OGImageHandler) svg(title, subtitle, detail string) string {
	theme := h.site.Theme
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
  <defs>
    <linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="%s"/>
      <stop offset="100%%" stop-color="%s"/>
    </linearGradient>
  </defs>
  <rect width="1200" height="630" fill="url(#bg)"/>
  <rect x="80" y="120" width="96" height="10" rx="5" fill="%s"/>
  <text x="80" y="230" font-family="Arial, sans-serif" font-size="64" font-weight="bold" fill="#ffffff">%s</text>
  <text x="80" y="310" font-family="Arial, sans-serif" font-size="36" fill="#e2e8f0">%s</text>
  <text x="80" y="380" font-family="Arial, sans-serif" font-size="28" fill="%s">%s</text>
  <text x="80" y="540" font-family="Arial, sans-serif" font-size="24" fill="#cbd5e1">%s</text>
</svg>`,
		theme.PrimaryDark, theme.Primary,
		theme.Accent,
		svgEscaper.Replace(truncate(title, 42)),
		svgEscaper.Replace(truncate(subtitle, 60)),
		theme.AccentLight, svgEscaper.Replace(truncate(detail, 70)),
		svgEscaper.Replace(h.site.Domain))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
