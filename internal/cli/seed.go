package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/db"
	"github.com/terraincognita07/beanleaf/internal/services"
)

// RunSeedCommand mirrors the catalog from source into the SQLite database at
// dbPath. Rows that already exist are left untouched.
func RunSeedCommand(ctx context.Context, out io.Writer, dbPath string, source services.CatalogSource) error {
	if strings.TrimSpace(dbPath) == "" {
		return errors.New("database path is required")
	}
	if source == nil {
		source = services.BuiltinCatalogSource{}
	}

	catalog, err := source.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.CloseSQLite(database)
	}()

	repositories := db.NewRepositories(database)
	result, err := repositories.Catalog.EnsureCatalog(ctx, catalog)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	total, err := repositories.Catalog.CountDiseases(ctx)
	if err != nil {
		return fmt.Errorf("count diseases: %w", err)
	}

	_, err = fmt.Fprintf(out, "✅ Catalog seeded: %d symptom(s) and %d disease(s) added, %d disease(s) stored\n", result.AddedSymptoms, result.AddedDiseases, total)
	return err
}
