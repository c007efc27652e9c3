// Package catalogfile reads and writes the disease catalog as YAML or JSON so
// operators can inspect it or serve an edited copy.
package catalogfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)

type document struct {
	Symptoms []string          `yaml:"symptoms" json:"symptoms"`
	Diseases []diseaseDocument `yaml:"diseases" json:"diseases"`
}

type diseaseDocument struct {
	Name     string   `yaml:"name" json:"name"`
	Category string   `yaml:"category" json:"category"`
	Symptoms []string `yaml:"symptoms" json:"symptoms"`
}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// FormatFromPath picks JSON for *.json files and YAML for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func Encode(w io.Writer, catalog models.Catalog, format Format) error {
	doc := toDocument(catalog)
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml catalog: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode json catalog: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func Decode(r io.Reader, format Format) (models.Catalog, error) {
	doc := document{}
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil {
			return models.Catalog{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidCatalog, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&doc); err != nil {
			return models.Catalog{}, fmt.Errorf("%w: decode json: %v", ErrInvalidCatalog, err)
		}
	default:
		return models.Catalog{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fromDocument(doc)
}

// FileSource loads the catalog from a YAML or JSON file on every call.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (source *FileSource) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return models.Catalog{}, err
	}

	file, err := os.Open(source.path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	catalog, err := Decode(file, FormatFromPath(source.path))
	if err != nil {
		return models.Catalog{}, fmt.Errorf("read %s: %w", source.path, err)
	}
	return catalog, nil
}

func toDocument(catalog models.Catalog) document {
	doc := document{
		Symptoms: make([]string, 0, catalog.SymptomCount()),
		Diseases: make([]diseaseDocument, 0, catalog.DiseaseCount()),
	}
	for _, symptom := range catalog.Symptoms() {
		doc.Symptoms = append(doc.Symptoms, symptom.Name)
	}
	for _, disease := range catalog.Diseases() {
		doc.Diseases = append(doc.Diseases, diseaseDocument{
			Name:     disease.Name,
			Category: string(disease.Category),
			Symptoms: disease.SymptomNames(),
		})
	}
	return doc
}

func fromDocument(doc document) (models.Catalog, error) {
	if len(doc.Diseases) == 0 {
		return models.Catalog{}, fmt.Errorf("%w: no diseases declared", ErrInvalidCatalog)
	}

	symptoms := make([]models.Symptom, 0, len(doc.Symptoms))
	declared := make(map[string]struct{}, len(doc.Symptoms))
	declare := func(name string) {
		if _, ok := declared[name]; ok {
			return
		}
		declared[name] = struct{}{}
		symptoms = append(symptoms, models.Symptom{Name: name})
	}

	for index, name := range doc.Symptoms {
		name = strings.TrimSpace(name)
		if name == "" {
			return models.Catalog{}, fmt.Errorf("%w: symptom %d has no name", ErrInvalidCatalog, index+1)
		}
		declare(name)
	}

	diseases := make([]models.Disease, 0, len(doc.Diseases))
	seenDiseases := make(map[string]struct{}, len(doc.Diseases))
	for index, entry := range doc.Diseases {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return models.Catalog{}, fmt.Errorf("%w: disease %d has no name", ErrInvalidCatalog, index+1)
		}
		key := strings.ToLower(name)
		if _, ok := seenDiseases[key]; ok {
			return models.Catalog{}, fmt.Errorf("%w: duplicate disease %q", ErrInvalidCatalog, name)
		}
		seenDiseases[key] = struct{}{}

		category := strings.TrimSpace(entry.Category)
		if category == "" {
			return models.Catalog{}, fmt.Errorf("%w: disease %q has no category", ErrInvalidCatalog, name)
		}

		diseaseSymptoms := make([]models.Symptom, 0, len(entry.Symptoms))
		for _, symptomName := range entry.Symptoms {
			symptomName = strings.TrimSpace(symptomName)
			if symptomName == "" {
				return models.Catalog{}, fmt.Errorf("%w: disease %q lists an empty symptom", ErrInvalidCatalog, name)
			}
			declare(symptomName)
			diseaseSymptoms = append(diseaseSymptoms, models.Symptom{Name: symptomName})
		}

		diseases = append(diseases, models.Disease{
			Name:     name,
			Category: models.Category(category),
			Symptoms: diseaseSymptoms,
		})
	}

	return models.NewCatalog(symptoms, diseases), nil
}
