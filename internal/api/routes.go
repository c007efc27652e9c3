package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowDiagnosePage)
	app.Post("/diagnose", handler.Diagnose)
	app.Get("/diseases", handler.ShowCatalog)
	app.Get("/diseases/:name", handler.ShowDisease)
	app.Get("/symptoms/:name", handler.ShowSymptom)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/symptoms", handler.ListSymptoms)
	api.Get("/symptoms/:name/diseases", handler.GetDiseasesWithSymptom)
	api.Get("/categories", handler.ListCategories)
	api.Get("/diseases", handler.ListDiseases)
	api.Get("/diseases/:name/symptoms", handler.GetDiseaseSymptoms)
	api.Post("/diagnose", handler.DiagnoseAPI)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
