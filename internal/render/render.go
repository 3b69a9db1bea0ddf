package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/siteconfig"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists every renderable page template. Each is parsed together with
// the shared layout.
var pages = []string{
	"home",
	"city",
	"company",
	"blog_index",
	"blog_post",
	"guides_index",
	"guide",
	"not_found",
}

// View is the data envelope every page template receives.
type View struct {
	Site        *siteconfig.Config
	Title       string
	Description string
	Canonical   string
	OGImage     string
	JSONLD      template.JS
	Page        any
}

// Renderer compiles the embedded templates and satisfies echo.Renderer.
type Renderer struct {
	site      *siteconfig.Config
	templates map[string]*template.Template

	analyticsKey  string
	analyticsHost string
}

// EnableAnalytics turns on the client-side analytics snippet in the shared
// layout. Disabled by default; pages render without it when no key is
// configured.
func (r *Renderer) EnableAnalytics(key, host string) {
	r.analyticsKey = key
	r.analyticsHost = host
}

// New compiles all page templates against the shared layout.
func New(site *siteconfig.Config) (*Renderer, error) {
	r := &Renderer{site: site}

	funcs := template.FuncMap{
		"render":        site.Render,
		"lower":         strings.ToLower,
		"analyticsKey":  func() string { return r.analyticsKey },
		"analyticsHost": func() string { return r.analyticsHost },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	r.templates = templates
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
