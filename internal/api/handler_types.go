package api

import "github.com/terraincognita07/beanleaf/internal/models"

type SymptomOption struct {
	Name     string
	Selected bool
}

type DiseaseView struct {
	Name     string
	Category string
	Symptoms []string
}

type diseasePayload struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Symptoms []string `json:"symptoms"`
}

type diagnoseInput struct {
	Symptoms []string `json:"symptoms" form:"symptoms"`
}

func newDiseaseView(disease models.Disease) DiseaseView {
	return DiseaseView{
		Name:     disease.Name,
		Category: string(disease.Category),
		Symptoms: disease.SymptomNames(),
	}
}

func newDiseasePayloads(diseases []models.Disease) []diseasePayload {
	payloads := make([]diseasePayload, 0, len(diseases))
	for _, disease := range diseases {
		payloads = append(payloads, diseasePayload{
			Name:     disease.Name,
			Category: string(disease.Category),
			Symptoms: disease.SymptomNames(),
		})
	}
	return payloads
}
