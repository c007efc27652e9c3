package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDiagnosePage(c *fiber.Ctx) error {
	return handler.render(c, "diagnose", handler.buildDiagnosePageData(c, nil, false))
}

// Diagnose handles the symptom form. An empty selection is answered with a
// warning instead of a result list.
func (handler *Handler) Diagnose(c *fiber.Ctx) error {
	selected, err := parseDiagnoseInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	data := handler.buildDiagnosePageData(c, selected, true)
	if isHTMX(c) {
		return handler.renderPartial(c, "diagnose_results", data)
	}
	return handler.render(c, "diagnose", data)
}

func (handler *Handler) buildDiagnosePageData(c *fiber.Ctx, selected []string, submitted bool) fiber.Map {
	messages := currentMessages(c)

	selectedSet := make(map[string]bool, len(selected))
	for _, name := range selected {
		selectedSet[name] = true
	}

	options := make([]SymptomOption, 0)
	for _, name := range handler.catalog.ListSymptoms() {
		options = append(options, SymptomOption{Name: name, Selected: selectedSet[name]})
	}

	matches := make([]DiseaseView, 0)
	if submitted && len(selected) > 0 {
		for _, disease := range handler.catalog.Diagnose(selected) {
			matches = append(matches, newDiseaseView(disease))
		}
	}

	return fiber.Map{
		"Title":                  localizedPageTitle(messages, "meta.title.diagnose", "Beanleaf | Diagnose"),
		"Symptoms":               options,
		"Submitted":              submitted,
		"ShowWarning":            submitted && len(selected) == 0,
		"Matches":                matches,
		"MatchCount":             len(matches),
		"ExampleDisease":         exampleDiseaseName,
		"ExampleDiseaseSymptoms": handler.catalog.Symptoms(exampleDiseaseName),
		"ExampleSymptom":         exampleSymptomName,
		"ExampleSymptomDiseases": handler.catalog.DiseasesWithSymptom(exampleSymptomName),
	}
}
