package db

import (
	"context"
	"fmt"
	"log"

	"github.com/terraincognita07/beanleaf/internal/models"
)

// SQLiteCatalogSource serves the catalog from a SQLite mirror. The mirror is
// topped up with the built-in records before every load.
type SQLiteCatalogSource struct {
	path string
}

func NewSQLiteCatalogSource(path string) *SQLiteCatalogSource {
	return &SQLiteCatalogSource{path: path}
}

func (source *SQLiteCatalogSource) LoadCatalog(ctx context.Context) (catalog models.Catalog, err error) {
	database, err := OpenSQLite(source.path)
	if err != nil {
		return models.Catalog{}, err
	}
	defer func() {
		if closeErr := CloseSQLite(database); closeErr != nil && err == nil {
			err = fmt.Errorf("close sqlite: %w", closeErr)
		}
	}()

	repo := NewCatalogRepository(database)
	result, err := repo.EnsureBuiltinCatalog(ctx)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("mirror built-in catalog: %w", err)
	}
	if result.AddedDiseases > 0 || result.AddedSymptoms > 0 {
		log.Printf("catalog mirror %s: added %d diseases, %d symptoms", source.path, result.AddedDiseases, result.AddedSymptoms)
	}

	return repo.LoadCatalog(ctx)
}
