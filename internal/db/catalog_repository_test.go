package db

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/terraincognita07/beanleaf/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "beanleaf-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = CloseSQLite(database)
	})
	return database
}

func TestEnsureBuiltinCatalogMirrorsDefaultCatalog(t *testing.T) {
	repo := NewCatalogRepository(openTestDatabase(t))
	ctx := context.Background()

	result, err := repo.EnsureBuiltinCatalog(ctx)
	if err != nil {
		t.Fatalf("EnsureBuiltinCatalog() unexpected error: %v", err)
	}
	if result.AddedDiseases != 25 || result.AddedSymptoms != 27 {
		t.Fatalf("unexpected mirror result: %#v", result)
	}

	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() unexpected error: %v", err)
	}

	want := models.DefaultCatalog()
	if !reflect.DeepEqual(catalog.Diseases(), want.Diseases()) {
		t.Fatalf("mirrored diseases differ from built-in catalog:\n got %#v\nwant %#v", catalog.Diseases(), want.Diseases())
	}
	if !reflect.DeepEqual(catalog.Symptoms(), want.Symptoms()) {
		t.Fatalf("mirrored symptoms differ from built-in catalog")
	}
}

func TestEnsureBuiltinCatalogIsIdempotent(t *testing.T) {
	repo := NewCatalogRepository(openTestDatabase(t))
	ctx := context.Background()

	if _, err := repo.EnsureBuiltinCatalog(ctx); err != nil {
		t.Fatalf("first EnsureBuiltinCatalog() unexpected error: %v", err)
	}
	result, err := repo.EnsureBuiltinCatalog(ctx)
	if err != nil {
		t.Fatalf("second EnsureBuiltinCatalog() unexpected error: %v", err)
	}
	if result.AddedDiseases != 0 || result.AddedSymptoms != 0 {
		t.Fatalf("expected no inserts on second run, got %#v", result)
	}

	count, err := repo.CountDiseases(ctx)
	if err != nil {
		t.Fatalf("CountDiseases() unexpected error: %v", err)
	}
	if count != 25 {
		t.Fatalf("expected 25 diseases, got %d", count)
	}
}

func TestEnsureCatalogAddsOnlyMissingRecords(t *testing.T) {
	repo := NewCatalogRepository(openTestDatabase(t))
	ctx := context.Background()

	partial := models.NewCatalog(
		[]models.Symptom{{Name: "wilting"}},
		[]models.Disease{{Name: "WATER STRESS", Category: models.CategoryAbiotic, Symptoms: []models.Symptom{{Name: "wilting"}}}},
	)
	if _, err := repo.EnsureCatalog(ctx, partial); err != nil {
		t.Fatalf("EnsureCatalog(partial) unexpected error: %v", err)
	}

	result, err := repo.EnsureBuiltinCatalog(ctx)
	if err != nil {
		t.Fatalf("EnsureBuiltinCatalog() unexpected error: %v", err)
	}
	if result.AddedDiseases != 24 || result.AddedSymptoms != 26 {
		t.Fatalf("unexpected mirror result: %#v", result)
	}

	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() unexpected error: %v", err)
	}
	diseases := catalog.Diseases()
	if diseases[0].Name != "WATER STRESS" || len(diseases[0].Symptoms) != 1 {
		t.Fatalf("expected pre-existing record to stay first and untouched, got %#v", diseases[0])
	}
	if diseases[1].Name != "Anthracnose" {
		t.Fatalf("expected built-in records appended in order, got %q", diseases[1].Name)
	}
}

func TestEnsureCatalogCreatesUndeclaredSymptoms(t *testing.T) {
	repo := NewCatalogRepository(openTestDatabase(t))
	ctx := context.Background()

	catalog := models.NewCatalog(nil, []models.Disease{{
		Name:     "Sunscald",
		Category: models.CategoryAbiotic,
		Symptoms: []models.Symptom{{Name: "bleached_pods"}, {Name: "leaf_drop"}},
	}})
	result, err := repo.EnsureCatalog(ctx, catalog)
	if err != nil {
		t.Fatalf("EnsureCatalog() unexpected error: %v", err)
	}
	if result.AddedSymptoms != 2 {
		t.Fatalf("expected 2 symptoms created, got %#v", result)
	}

	loaded, err := repo.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() unexpected error: %v", err)
	}
	if got := loaded.Diseases()[0].SymptomNames(); !reflect.DeepEqual(got, []string{"bleached_pods", "leaf_drop"}) {
		t.Fatalf("unexpected symptom order: %#v", got)
	}
}

func TestSQLiteCatalogSourceLoadsBuiltinCatalog(t *testing.T) {
	source := NewSQLiteCatalogSource(filepath.Join(t.TempDir(), "nested", "catalog.db"))

	catalog, err := source.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(catalog.Diseases(), models.DefaultDiseases()) {
		t.Fatal("expected SQLite source to serve the built-in diseases verbatim")
	}

	again, err := source.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("second LoadCatalog() unexpected error: %v", err)
	}
	if again.DiseaseCount() != catalog.DiseaseCount() {
		t.Fatalf("expected stable catalog across loads, got %d and %d", catalog.DiseaseCount(), again.DiseaseCount())
	}
}

func TestApplyMigrationsRejectsDuplicateVersions(t *testing.T) {
	database := openTestDatabase(t)

	files := fstest.MapFS{
		"0002_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER)")},
		"002_b.sql":  {Data: []byte("CREATE TABLE b (id INTEGER)")},
	}
	if err := applyMigrations(database, files); err == nil {
		t.Fatal("expected duplicate migration version error")
	}
}

func TestApplyMigrationsSkipsAppliedVersions(t *testing.T) {
	database := openTestDatabase(t)

	files := fstest.MapFS{
		"0099_extra.sql": {Data: []byte("CREATE TABLE extra (id INTEGER); CREATE TABLE extra_two (id INTEGER);")},
		"README.md":      {Data: []byte("ignored")},
	}
	if err := applyMigrations(database, files); err != nil {
		t.Fatalf("first applyMigrations() unexpected error: %v", err)
	}
	if err := applyMigrations(database, files); err != nil {
		t.Fatalf("second applyMigrations() unexpected error: %v", err)
	}

	var count int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, "99").Scan(&count).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected migration recorded once, got %d", count)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	got := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n ;CREATE INDEX i ON a(id);")
	want := []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX i ON a(id)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitSQLStatements() = %#v, want %#v", got, want)
	}
}
