package api

import (
	"html/template"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t":             templateTranslate,
		"tf":            templateTranslatef,
		"symptomLabel":  templateSymptomLabel,
		"categoryLabel": templateCategoryLabel,
		"join":          templateJoin,
		"pathEscape":    templatePathEscape,
		"isActiveRoute": isActiveTemplateRoute,
	}
}
