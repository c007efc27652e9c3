package api

var pageTemplates = []string{
	"diagnose",
	"catalog",
	"disease",
	"symptom",
	"not_found",
}

var partialTemplateFiles = []string{"diagnose_results.html"}
