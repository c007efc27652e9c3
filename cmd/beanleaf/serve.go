package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/beanleaf/internal/api"
	"github.com/terraincognita07/beanleaf/internal/i18n"
	"github.com/terraincognita07/beanleaf/internal/services"
)

const shutdownTimeout = 10 * time.Second

func runServer(ctx context.Context, catalog *services.CatalogService, config serverConfig) error {
	i18nManager, err := i18n.NewManager(config.DefaultLanguage, config.LocalesDir)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(catalog, config.TemplatesDir, i18nManager, config.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, config)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Beanleaf listening on http://0.0.0.0:%s (%d diseases, %d symptoms)", config.Port, len(catalog.ListDiseases()), len(catalog.ListSymptoms()))
	if err := app.Listen(":" + config.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, config serverConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Beanleaf",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(config.CookieSecure)))

	app.Static("/static", config.StaticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "beanleaf_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
}
