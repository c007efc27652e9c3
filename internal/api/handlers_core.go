package api

import (
	"bytes"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"diseases": len(handler.catalog.ListDiseases()),
		"symptoms": len(handler.catalog.ListSymptoms()),
	})
}

// render writes a full page through the base layout.
func (handler *Handler) render(c *fiber.Ctx, page string, data fiber.Map) error {
	return handler.execute(c, handler.templates[page], "base", page, data)
}

// renderPartial writes a fragment without the layout, for htmx swaps.
func (handler *Handler) renderPartial(c *fiber.Ctx, partial string, data fiber.Map) error {
	return handler.execute(c, handler.partials[partial], partial, partial, data)
}

func (handler *Handler) execute(c *fiber.Ctx, tmpl *template.Template, entry string, name string, data fiber.Map) error {
	if tmpl == nil {
		log.Printf("template %q is not registered", name)
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}

	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, entry, handler.withTemplateDefaults(c, data)); err != nil {
		log.Printf("render %q: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}
