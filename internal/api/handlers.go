package api

import (
	"errors"
	"html/template"

	"github.com/terraincognita07/beanleaf/internal/i18n"
	"github.com/terraincognita07/beanleaf/internal/services"
)

const (
	exampleDiseaseName = "Anthracnose"
	exampleSymptomName = "wilting"
)

type Handler struct {
	catalog      *services.CatalogService
	i18n         *i18n.Manager
	cookieSecure bool
	templates    map[string]*template.Template
	partials     map[string]*template.Template
}

func NewHandler(catalog *services.CatalogService, templateDir string, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if catalog == nil {
		return nil, errors.New("catalog service is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	funcMap := newTemplateFuncMap()
	templates, err := parsePageTemplates(templateDir, funcMap, pageTemplates, partialTemplateFiles)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(templateDir, funcMap, partialTemplateFiles)
	if err != nil {
		return nil, err
	}

	return &Handler{
		catalog:      catalog,
		i18n:         i18nManager,
		cookieSecure: cookieSecure,
		templates:    templates,
		partials:     partials,
	}, nil
}
