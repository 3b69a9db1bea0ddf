package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/auth"
	"github.com/octobees/roofcompare/internal/config"
	"github.com/octobees/roofcompare/internal/handler"
	middlewarepkg "github.com/octobees/roofcompare/internal/middleware"
)

// Handlers aggregates the HTTP handlers wired by the router.
type Handlers struct {
	Pages   *handler.PagesHandler
	Sitemap *handler.SitemapHandler
	OGImage *handler.OGImageHandler
	Intake  *handler.IntakeHandler
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
}

// Register wires all HTTP routes. The admin surface is only mounted when
// admin credentials are configured.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.GET("/", handlers.Pages.Home)
	e.GET("/search", handlers.Pages.Search)
	e.GET("/blog", handlers.Pages.BlogIndex)
	e.GET("/blog/:slug", handlers.Pages.BlogPost)
	e.GET("/guides", handlers.Pages.GuidesIndex)
	e.GET("/guides/:slug", handlers.Pages.Guide)
	e.GET("/company/:slug", handlers.Pages.Company)
	e.GET("/:state/:city", handlers.Pages.City)

	e.GET("/sitemap.xml", handlers.Sitemap.Sitemap)

	e.GET("/og/home", handlers.OGImage.Home)
	e.GET("/og/:slug", handlers.OGImage.Company)
	e.GET("/og/:state/:city", handlers.OGImage.City)

	intakeLimiter := middlewarepkg.IntakeRateLimiter(cfg.RateLimitIntake, "/api/lead-capture", "/api/quote")
	e.POST("/api/lead-capture", handlers.Intake.LeadCapture, intakeLimiter)
	e.POST("/api/quote", handlers.Intake.Quote, intakeLimiter)

	if handlers.Auth != nil {
		e.POST("/auth/login", handlers.Auth.Login)

		admin := e.Group("/admin", middlewarepkg.JWT(jwtManager), middlewarepkg.RequireRole("admin"))
		admin.POST("/upload-csv", handlers.Admin.UploadCSV)
		admin.GET("/submissions", handlers.Admin.Submissions)
	}
}
