package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/terraincognita07/beanleaf/internal/catalogfile"
	"github.com/terraincognita07/beanleaf/internal/db"
	"github.com/terraincognita07/beanleaf/internal/services"
)

type catalogOptions struct {
	dbPath   string
	filePath string
}

type serverConfig struct {
	Port            string
	DefaultLanguage string
	TemplatesDir    string
	LocalesDir      string
	StaticDir       string
	CookieSecure    bool
}

func defaultCatalogOptions() catalogOptions {
	return catalogOptions{
		dbPath:   getEnv("CATALOG_DB_PATH", ""),
		filePath: getEnv("CATALOG_FILE", ""),
	}
}

// source picks the catalog file first, then the SQLite mirror, then the
// compiled-in catalog.
func (options catalogOptions) source() services.CatalogSource {
	if path := strings.TrimSpace(options.filePath); path != "" {
		return catalogfile.NewFileSource(path)
	}
	if path := strings.TrimSpace(options.dbPath); path != "" {
		return db.NewSQLiteCatalogSource(path)
	}
	return services.BuiltinCatalogSource{}
}

func (options catalogOptions) describe() string {
	if path := strings.TrimSpace(options.filePath); path != "" {
		return "file " + path
	}
	if path := strings.TrimSpace(options.dbPath); path != "" {
		return "sqlite " + path
	}
	return "built-in"
}

func (options catalogOptions) load(ctx context.Context) (*services.CatalogService, error) {
	return services.LoadCatalogService(ctx, options.source())
}

func resolveServerConfig() (serverConfig, error) {
	port, err := resolvePort()
	if err != nil {
		return serverConfig{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return serverConfig{}, err
	}

	return serverConfig{
		Port:            port,
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		TemplatesDir:    getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates")),
		LocalesDir:      getEnv("LOCALES_DIR", filepath.Join("internal", "i18n", "locales")),
		StaticDir:       getEnv("STATIC_DIR", filepath.Join("web", "static")),
		CookieSecure:    cookieSecure,
	}, nil
}

func resolvePort() (string, error) {
	return parsePort(getEnv("PORT", "8080"))
}

func parsePort(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: expected integer in range 1..65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: expected true or false", key, raw)
	}
	return value, nil
}
