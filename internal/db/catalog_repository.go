package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/models"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	database *gorm.DB
}

type MirrorResult struct {
	AddedSymptoms int
	AddedDiseases int
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

func (repo *CatalogRepository) CountDiseases(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.DiseaseRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *CatalogRepository) EnsureBuiltinCatalog(ctx context.Context) (MirrorResult, error) {
	return repo.EnsureCatalog(ctx, models.DefaultCatalog())
}

// EnsureCatalog inserts every symptom and disease of catalog that the mirror
// does not hold yet, matching names case-insensitively. Rows already present
// are left untouched, so running it twice is a no-op.
func (repo *CatalogRepository) EnsureCatalog(ctx context.Context, catalog models.Catalog) (MirrorResult, error) {
	result := MirrorResult{}
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		symptomIDs, nextSymptomPosition, err := loadSymptomIndex(tx)
		if err != nil {
			return err
		}

		ensureSymptom := func(name string) (uint, error) {
			key := strings.ToLower(name)
			if id, ok := symptomIDs[key]; ok {
				return id, nil
			}
			record := models.SymptomRecord{Name: name, Position: nextSymptomPosition}
			if err := tx.Create(&record).Error; err != nil {
				return 0, fmt.Errorf("create symptom %q: %w", name, err)
			}
			nextSymptomPosition++
			symptomIDs[key] = record.ID
			result.AddedSymptoms++
			return record.ID, nil
		}

		for _, symptom := range catalog.Symptoms() {
			if _, err := ensureSymptom(symptom.Name); err != nil {
				return err
			}
		}

		existingDiseases, nextDiseasePosition, err := loadDiseaseIndex(tx)
		if err != nil {
			return err
		}

		for _, disease := range catalog.Diseases() {
			if _, ok := existingDiseases[strings.ToLower(disease.Name)]; ok {
				continue
			}

			record := models.DiseaseRecord{
				Name:     disease.Name,
				Category: string(disease.Category),
				Position: nextDiseasePosition,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("create disease %q: %w", disease.Name, err)
			}
			nextDiseasePosition++
			existingDiseases[strings.ToLower(disease.Name)] = record.ID
			result.AddedDiseases++

			links := make([]models.DiseaseSymptomRecord, 0, len(disease.Symptoms))
			for position, symptom := range disease.Symptoms {
				symptomID, err := ensureSymptom(symptom.Name)
				if err != nil {
					return err
				}
				links = append(links, models.DiseaseSymptomRecord{
					DiseaseID: record.ID,
					SymptomID: symptomID,
					Position:  position,
				})
			}
			if len(links) == 0 {
				continue
			}
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("link symptoms of %q: %w", disease.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return MirrorResult{}, err
	}
	return result, nil
}

// LoadCatalog rebuilds the catalog from the mirror in stored order.
func (repo *CatalogRepository) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	database := repo.database.WithContext(ctx)

	symptomRows := make([]models.SymptomRecord, 0)
	if err := database.Order("position ASC, id ASC").Find(&symptomRows).Error; err != nil {
		return models.Catalog{}, fmt.Errorf("load symptoms: %w", err)
	}

	diseaseRows := make([]models.DiseaseRecord, 0)
	if err := database.Order("position ASC, id ASC").Find(&diseaseRows).Error; err != nil {
		return models.Catalog{}, fmt.Errorf("load diseases: %w", err)
	}

	links := make([]models.DiseaseSymptomRecord, 0)
	if err := database.Order("disease_id ASC, position ASC, id ASC").Find(&links).Error; err != nil {
		return models.Catalog{}, fmt.Errorf("load disease symptoms: %w", err)
	}

	symptoms := make([]models.Symptom, 0, len(symptomRows))
	symptomNames := make(map[uint]string, len(symptomRows))
	for _, row := range symptomRows {
		symptoms = append(symptoms, models.Symptom{Name: row.Name})
		symptomNames[row.ID] = row.Name
	}

	symptomsByDisease := make(map[uint][]models.Symptom, len(diseaseRows))
	for _, link := range links {
		name, ok := symptomNames[link.SymptomID]
		if !ok {
			return models.Catalog{}, fmt.Errorf("disease %d references unknown symptom %d", link.DiseaseID, link.SymptomID)
		}
		symptomsByDisease[link.DiseaseID] = append(symptomsByDisease[link.DiseaseID], models.Symptom{Name: name})
	}

	diseases := make([]models.Disease, 0, len(diseaseRows))
	for _, row := range diseaseRows {
		diseases = append(diseases, models.Disease{
			Name:     row.Name,
			Category: models.Category(row.Category),
			Symptoms: symptomsByDisease[row.ID],
		})
	}

	return models.NewCatalog(symptoms, diseases), nil
}

func loadSymptomIndex(tx *gorm.DB) (map[string]uint, int, error) {
	rows := make([]models.SymptomRecord, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("load symptoms: %w", err)
	}

	index := make(map[string]uint, len(rows))
	nextPosition := 0
	for _, row := range rows {
		index[strings.ToLower(row.Name)] = row.ID
		if row.Position >= nextPosition {
			nextPosition = row.Position + 1
		}
	}
	return index, nextPosition, nil
}

func loadDiseaseIndex(tx *gorm.DB) (map[string]uint, int, error) {
	rows := make([]models.DiseaseRecord, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("load diseases: %w", err)
	}

	index := make(map[string]uint, len(rows))
	nextPosition := 0
	for _, row := range rows {
		index[strings.ToLower(row.Name)] = row.ID
		if row.Position >= nextPosition {
			nextPosition = row.Position + 1
		}
	}
	return index, nextPosition, nil
}
