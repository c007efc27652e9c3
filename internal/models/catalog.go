package models

// Catalog is the read-only set of symptoms and diseases every query runs
// against. The zero value is an empty catalog.
type Catalog struct {
	symptoms []Symptom
	diseases []Disease
}

func NewCatalog(symptoms []Symptom, diseases []Disease) Catalog {
	ownedSymptoms := make([]Symptom, len(symptoms))
	copy(ownedSymptoms, symptoms)

	ownedDiseases := make([]Disease, 0, len(diseases))
	for _, disease := range diseases {
		ownedDiseases = append(ownedDiseases, disease.Clone())
	}

	return Catalog{
		symptoms: ownedSymptoms,
		diseases: ownedDiseases,
	}
}

func DefaultCatalog() Catalog {
	return NewCatalog(DefaultSymptoms(), DefaultDiseases())
}

func (catalog Catalog) Symptoms() []Symptom {
	result := make([]Symptom, len(catalog.symptoms))
	copy(result, catalog.symptoms)
	return result
}

func (catalog Catalog) Diseases() []Disease {
	result := make([]Disease, 0, len(catalog.diseases))
	for _, disease := range catalog.diseases {
		result = append(result, disease.Clone())
	}
	return result
}

func (catalog Catalog) SymptomCount() int {
	return len(catalog.symptoms)
}

func (catalog Catalog) DiseaseCount() int {
	return len(catalog.diseases)
}
