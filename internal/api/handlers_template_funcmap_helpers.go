package api

import (
	"fmt"
	"net/url"
	"strings"
)

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateTranslatef(messages map[string]string, key string, args ...any) string {
	return fmt.Sprintf(translateMessage(messages, key), args...)
}

func templateSymptomLabel(messages map[string]string, name string) string {
	return localizedSymptomName(messages, name)
}

func templateCategoryLabel(messages map[string]string, category string) string {
	return localizedCategoryName(messages, category)
}

func templateJoin(values []string) string {
	return strings.Join(values, ", ")
}

func templatePathEscape(value string) string {
	return url.PathEscape(value)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?") || strings.HasPrefix(path, "/diagnose")
	}
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}
