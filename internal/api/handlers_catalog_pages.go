package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type categoryGroupView struct {
	Category string
	Diseases []DiseaseView
}

func (handler *Handler) ShowCatalog(c *fiber.Ctx) error {
	messages := currentMessages(c)

	groups := make([]categoryGroupView, 0)
	for _, group := range handler.catalog.DiseasesByCategory() {
		view := categoryGroupView{Category: string(group.Category)}
		for _, disease := range group.Diseases {
			view.Diseases = append(view.Diseases, newDiseaseView(disease))
		}
		groups = append(groups, view)
	}

	return handler.render(c, "catalog", fiber.Map{
		"Title":  localizedPageTitle(messages, "meta.title.catalog", "Beanleaf | Disease Catalog"),
		"Groups": groups,
	})
}

func (handler *Handler) ShowDisease(c *fiber.Ctx) error {
	disease, ok := handler.catalog.FindDisease(pathParam(c, "name"))
	if !ok {
		return handler.NotFound(c)
	}

	messages := currentMessages(c)
	return handler.render(c, "disease", fiber.Map{
		"Title":   fmt.Sprintf(localizedPageTitle(messages, "meta.title.disease", "Beanleaf | %s"), disease.Name),
		"Disease": newDiseaseView(disease),
	})
}

func (handler *Handler) ShowSymptom(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	if !handler.catalog.HasSymptom(name) {
		return handler.NotFound(c)
	}

	messages := currentMessages(c)
	label := localizedSymptomName(messages, name)
	return handler.render(c, "symptom", fiber.Map{
		"Title":        fmt.Sprintf(localizedPageTitle(messages, "meta.title.symptom", "Beanleaf | %s"), label),
		"SymptomName":  name,
		"SymptomLabel": label,
		"Diseases":     handler.catalog.DiseasesWithSymptom(name),
	})
}
