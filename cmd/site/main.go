package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/roofcompare/internal/auth"
	"github.com/octobees/roofcompare/internal/config"
	"github.com/octobees/roofcompare/internal/database"
	"github.com/octobees/roofcompare/internal/directory"
	"github.com/octobees/roofcompare/internal/handler"
	middlewarepkg "github.com/octobees/roofcompare/internal/middleware"
	"github.com/octobees/roofcompare/internal/notify"
	"github.com/octobees/roofcompare/internal/render"
	"github.com/octobees/roofcompare/internal/repository"
	"github.com/octobees/roofcompare/internal/router"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	site, err := siteconfig.Load(cfg.SiteConfigPath)
	if err != nil {
		logger.Fatal("failed to load site config", zap.String("path", cfg.SiteConfigPath), zap.Error(err))
	}

	store, err := directory.Load(cfg.DatasetPath)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.String("path", cfg.DatasetPath), zap.Error(err))
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = site.BaseURL()
	}

	var submissions repository.SubmissionsRepository
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			logger.Fatal("failed to connect database", zap.Error(err))
		}
		defer pool.Close()
		submissions = repository.NewPGXSubmissionsRepository(pool)
	} else {
		submissions = repository.NewFileSubmissionsRepository(cfg.SubmissionsPath)
		logger.Info("storing submissions on disk", zap.String("path", cfg.SubmissionsPath))
	}

	var sender notify.EmailSender = notify.Nop{}
	if cfg.EmailEnabled() {
		sender = notify.NewResendClient(nil, cfg.ResendAPIKey)
	} else {
		logger.Info("email notifications disabled, quote emails will be dropped")
	}

	renderer, err := render.New(site)
	if err != nil {
		logger.Fatal("failed to compile templates", zap.Error(err))
	}
	if cfg.PosthogKey != "" {
		renderer.EnableAnalytics(cfg.PosthogKey, cfg.PosthogHost)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	pagesHandler := handler.NewPagesHandler(store, site, baseURL)

	handlers := router.Handlers{
		Pages:   pagesHandler,
		Sitemap: handler.NewSitemapHandler(store, baseURL),
		OGImage: handler.NewOGImageHandler(store, site),
		Intake:  handler.NewIntakeHandler(site, submissions, sender, logger),
	}
	if cfg.AdminEnabled() {
		authenticator := auth.NewAdminAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, jwtManager)
		handlers.Auth = handler.NewAuthHandler(authenticator)
		handlers.Admin = handler.NewAdminHandler(store, submissions, cfg.DatasetPath, cfg.CityIndexPath, logger)
	} else {
		logger.Info("admin surface disabled, set ADMIN_EMAIL and ADMIN_PASSWORD_HASH to enable")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())

	// Browser navigation to an unknown path gets the 404 page instead of
	// the JSON error payload.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound &&
			!c.Response().Committed &&
			strings.Contains(c.Request().Header.Get("Accept"), "text/html") {
			if renderErr := pagesHandler.NotFound(c); renderErr == nil {
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	router.Register(e, cfg, jwtManager, handlers)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("base_url", baseURL),
		zap.Int("companies", store.Len()))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
