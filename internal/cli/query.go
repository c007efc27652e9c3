package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/services"
)

const (
	exampleDiseaseName = "Anthracnose"
	exampleSymptomName = "wilting"
)

var ErrNoSymptomsSelected = errors.New("please select at least one symptom")

// RunExampleCommand prints the two demonstration queries.
func RunExampleCommand(out io.Writer, catalog *services.CatalogService) error {
	if _, err := fmt.Fprintf(out, "Symptoms of %s: %s\n", exampleDiseaseName, strings.Join(catalog.Symptoms(exampleDiseaseName), ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Diseases causing %s: %s\n", exampleSymptomName, strings.Join(catalog.DiseasesWithSymptom(exampleSymptomName), ", "))
	return err
}

func RunSymptomsCommand(out io.Writer, catalog *services.CatalogService, diseaseName string) error {
	name := strings.TrimSpace(diseaseName)
	if name == "" {
		return errors.New("disease name is required")
	}
	return writeLines(out, catalog.Symptoms(name))
}

func RunDiseasesCommand(out io.Writer, catalog *services.CatalogService, symptomName string) error {
	name := strings.TrimSpace(symptomName)
	if name == "" {
		return errors.New("symptom name is required")
	}
	return writeLines(out, catalog.DiseasesWithSymptom(name))
}

// RunDiagnoseCommand prints one line per matching disease. An empty selection
// returns ErrNoSymptomsSelected without printing anything.
func RunDiagnoseCommand(out io.Writer, catalog *services.CatalogService, symptoms []string) error {
	selected := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		if strings.TrimSpace(symptom) != "" {
			selected = append(selected, symptom)
		}
	}
	if len(selected) == 0 {
		return ErrNoSymptomsSelected
	}

	matches := catalog.Diagnose(selected)
	if len(matches) == 0 {
		_, err := fmt.Fprintln(out, "No diseases matched the selected symptoms.")
		return err
	}

	for _, disease := range matches {
		if _, err := fmt.Fprintf(out, "%s (%s): %s\n", disease.Name, disease.Category, strings.Join(disease.SymptomNames(), ", ")); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
