package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": handler.catalog.ListSymptoms()})
}

func (handler *Handler) ListDiseases(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"diseases": newDiseasePayloads(handler.catalog.ListDiseases())})
}

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	categories := make([]string, 0)
	for _, category := range handler.catalog.Categories() {
		categories = append(categories, string(category))
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// GetDiseaseSymptoms answers with an empty list for unknown diseases, the same
// way the lookup itself does.
func (handler *Handler) GetDiseaseSymptoms(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	return c.JSON(fiber.Map{
		"disease":  name,
		"symptoms": handler.catalog.Symptoms(name),
	})
}

func (handler *Handler) GetDiseasesWithSymptom(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	return c.JSON(fiber.Map{
		"symptom":  name,
		"diseases": handler.catalog.DiseasesWithSymptom(name),
	})
}

func (handler *Handler) DiagnoseAPI(c *fiber.Ctx) error {
	selected, err := parseDiagnoseInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	diseases := newDiseasePayloads(handler.catalog.Diagnose(selected))
	response := fiber.Map{
		"count":    len(diseases),
		"diseases": diseases,
	}
	if len(selected) == 0 {
		response["warning"] = "no symptoms selected"
	}
	return c.JSON(response)
}
