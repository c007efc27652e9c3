package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errInvalidInput = errors.New("invalid input")

// parseDiagnoseInput reads the selected symptoms from a JSON body or from
// repeated "symptoms" form fields.
func parseDiagnoseInput(c *fiber.Ctx) ([]string, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.Contains(contentType, fiber.MIMEApplicationJSON):
		input := diagnoseInput{}
		if err := c.BodyParser(&input); err != nil {
			return nil, errInvalidInput
		}
		return normalizeSelectedSymptoms(input.Symptoms), nil
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errInvalidInput
		}
		return normalizeSelectedSymptoms(form.Value["symptoms"]), nil
	default:
		raw := make([]string, 0)
		for _, value := range c.Context().PostArgs().PeekMulti("symptoms") {
			raw = append(raw, string(value))
		}
		return normalizeSelectedSymptoms(raw), nil
	}
}

// normalizeSelectedSymptoms drops blank values and repeats while keeping the
// submitted order. Values are passed on verbatim since diagnose matches
// exactly.
func normalizeSelectedSymptoms(raw []string) []string {
	result := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, name := range raw {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
