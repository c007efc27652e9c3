package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/models"
)

var ErrLoadCatalogFailed = errors.New("load catalog failed")

type CatalogSource interface {
	LoadCatalog(ctx context.Context) (models.Catalog, error)
}

// BuiltinCatalogSource serves the catalog compiled into the binary.
type BuiltinCatalogSource struct{}

func (BuiltinCatalogSource) LoadCatalog(context.Context) (models.Catalog, error) {
	return models.DefaultCatalog(), nil
}

// CatalogService answers read-only queries over a catalog. It never mutates
// its state after construction, so one instance can serve concurrent callers.
type CatalogService struct {
	symptoms []models.Symptom
	diseases []models.Disease
}

type CategoryGroup struct {
	Category models.Category
	Diseases []models.Disease
}

func NewCatalogService(catalog models.Catalog) *CatalogService {
	return &CatalogService{
		symptoms: catalog.Symptoms(),
		diseases: catalog.Diseases(),
	}
}

func LoadCatalogService(ctx context.Context, source CatalogSource) (*CatalogService, error) {
	if source == nil {
		source = BuiltinCatalogSource{}
	}
	catalog, err := source.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalogFailed, err)
	}
	return NewCatalogService(catalog), nil
}

// Symptoms returns the symptom names of the first disease whose name matches
// diseaseName ignoring case. An unknown disease yields an empty slice.
func (service *CatalogService) Symptoms(diseaseName string) []string {
	key := normalizeLookupName(diseaseName)
	for _, disease := range service.diseases {
		if normalizeLookupName(disease.Name) == key {
			return disease.SymptomNames()
		}
	}
	return []string{}
}

// DiseasesWithSymptom lists, in catalog order, every disease carrying the
// symptom. A disease is listed once per matching entry in its symptom list.
func (service *CatalogService) DiseasesWithSymptom(symptomName string) []string {
	key := normalizeLookupName(symptomName)
	result := make([]string, 0)
	for _, disease := range service.diseases {
		for _, symptom := range disease.Symptoms {
			if normalizeLookupName(symptom.Name) == key {
				result = append(result, disease.Name)
			}
		}
	}
	return result
}

// Diagnose returns every disease with at least one of the selected symptoms.
// Matching is exact; adding symptoms never removes a disease from the result.
func (service *CatalogService) Diagnose(selected []string) []models.Disease {
	result := make([]models.Disease, 0)
	if len(selected) == 0 {
		return result
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		selectedSet[name] = struct{}{}
	}

	for _, disease := range service.diseases {
		if hasAnySymptom(disease, selectedSet) {
			result = append(result, disease.Clone())
		}
	}
	return result
}

func (service *CatalogService) ListSymptoms() []string {
	names := make([]string, 0, len(service.symptoms))
	for _, symptom := range service.symptoms {
		names = append(names, symptom.Name)
	}
	return names
}

func (service *CatalogService) ListDiseases() []models.Disease {
	result := make([]models.Disease, 0, len(service.diseases))
	for _, disease := range service.diseases {
		result = append(result, disease.Clone())
	}
	return result
}

func (service *CatalogService) FindDisease(name string) (models.Disease, bool) {
	key := normalizeLookupName(name)
	for _, disease := range service.diseases {
		if normalizeLookupName(disease.Name) == key {
			return disease.Clone(), true
		}
	}
	return models.Disease{}, false
}

func (service *CatalogService) HasSymptom(name string) bool {
	key := normalizeLookupName(name)
	for _, symptom := range service.symptoms {
		if normalizeLookupName(symptom.Name) == key {
			return true
		}
	}
	return false
}

// Categories lists the distinct categories in the order they first appear.
func (service *CatalogService) Categories() []models.Category {
	seen := make(map[models.Category]struct{})
	result := make([]models.Category, 0)
	for _, disease := range service.diseases {
		if _, ok := seen[disease.Category]; ok {
			continue
		}
		seen[disease.Category] = struct{}{}
		result = append(result, disease.Category)
	}
	return result
}

func (service *CatalogService) DiseasesByCategory() []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[models.Category]int)
	for _, disease := range service.diseases {
		position, ok := index[disease.Category]
		if !ok {
			position = len(groups)
			index[disease.Category] = position
			groups = append(groups, CategoryGroup{Category: disease.Category})
		}
		groups[position].Diseases = append(groups[position].Diseases, disease.Clone())
	}
	return groups
}

func hasAnySymptom(disease models.Disease, selected map[string]struct{}) bool {
	for _, symptom := range disease.Symptoms {
		if _, ok := selected[symptom.Name]; ok {
			return true
		}
	}
	return false
}

func normalizeLookupName(name string) string {
	return strings.ToLower(name)
}
