package models

type Category string

const (
	CategoryFungal      Category = "Fungal"
	CategoryBacterial   Category = "Bacterial"
	CategoryViral       Category = "Viral"
	CategoryNematode    Category = "Nematode"
	CategoryNutritional Category = "Nutritional"
	CategoryAbiotic     Category = "Abiotic"
)

// Symptom is an observable sign of plant distress. Its name is its identity.
type Symptom struct {
	Name string
}

type Disease struct {
	Name     string
	Category Category
	Symptoms []Symptom
}

func (disease Disease) SymptomNames() []string {
	names := make([]string, 0, len(disease.Symptoms))
	for _, symptom := range disease.Symptoms {
		names = append(names, symptom.Name)
	}
	return names
}

// Clone returns a copy that shares no backing array with disease.
func (disease Disease) Clone() Disease {
	symptoms := make([]Symptom, len(disease.Symptoms))
	copy(symptoms, disease.Symptoms)
	disease.Symptoms = symptoms
	return disease
}

func symptomList(names ...string) []Symptom {
	symptoms := make([]Symptom, 0, len(names))
	for _, name := range names {
		symptoms = append(symptoms, Symptom{Name: name})
	}
	return symptoms
}
