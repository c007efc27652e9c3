package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/beanleaf/internal/api"
	"github.com/terraincognita07/beanleaf/internal/catalogfile"
	"github.com/terraincognita07/beanleaf/internal/cli"
	"github.com/terraincognita07/beanleaf/internal/db"
	"github.com/terraincognita07/beanleaf/internal/i18n"
	"github.com/terraincognita07/beanleaf/internal/models"
	"github.com/terraincognita07/beanleaf/internal/services"
)

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil {
		t.Fatalf("expected default port, got error: %v", err)
	}
	if port != "8080" {
		t.Fatalf("expected default port 8080, got %q", port)
	}

	t.Setenv("PORT", "9090")
	port, err = resolvePort()
	if err != nil {
		t.Fatalf("expected valid port, got error: %v", err)
	}
	if port != "9090" {
		t.Fatalf("expected port 9090, got %q", port)
	}

	t.Setenv("PORT", "0")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid port 0 to fail")
	}

	t.Setenv("PORT", "70000")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid high port to fail")
	}

	t.Setenv("PORT", "not-a-number")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid non-numeric port to fail")
	}
}

func TestResolveBool(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "")
	if value, err := resolveBool("COOKIE_SECURE", false); err != nil || value {
		t.Fatalf("expected default false, got %v (%v)", value, err)
	}

	t.Setenv("COOKIE_SECURE", "true")
	if value, err := resolveBool("COOKIE_SECURE", false); err != nil || !value {
		t.Fatalf("expected true, got %v (%v)", value, err)
	}

	t.Setenv("COOKIE_SECURE", "sometimes")
	if _, err := resolveBool("COOKIE_SECURE", false); err == nil {
		t.Fatal("expected invalid boolean to fail")
	}
}

func TestResolveServerConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEFAULT_LANGUAGE", "COOKIE_SECURE", "TEMPLATES_DIR", "LOCALES_DIR", "STATIC_DIR"} {
		t.Setenv(key, "")
	}

	config, err := resolveServerConfig()
	if err != nil {
		t.Fatalf("resolveServerConfig returned error: %v", err)
	}
	if config.Port != "8080" || config.DefaultLanguage != "en" || config.CookieSecure {
		t.Fatalf("unexpected defaults %+v", config)
	}
	if config.TemplatesDir != filepath.Join("internal", "templates") || config.StaticDir != filepath.Join("web", "static") {
		t.Fatalf("unexpected asset directories %+v", config)
	}
}

func TestCatalogOptionsSourcePrecedence(t *testing.T) {
	if _, ok := (catalogOptions{}).source().(services.BuiltinCatalogSource); !ok {
		t.Fatal("expected built-in source without options")
	}
	if _, ok := (catalogOptions{dbPath: "catalog.db"}).source().(*db.SQLiteCatalogSource); !ok {
		t.Fatal("expected sqlite source when only the database is set")
	}
	if _, ok := (catalogOptions{dbPath: "catalog.db", filePath: "catalog.yaml"}).source().(*catalogfile.FileSource); !ok {
		t.Fatal("expected file source to win over the database")
	}
}

func TestCSRFMiddlewareConfigUsesCookieSecureFlag(t *testing.T) {
	secureConfig := csrfMiddlewareConfig(true)
	if !secureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be enabled")
	}
	if !secureConfig.CookieHTTPOnly {
		t.Fatal("expected csrf cookie to be httpOnly")
	}
	if secureConfig.CookieName != "beanleaf_csrf" {
		t.Fatalf("expected csrf cookie name beanleaf_csrf, got %q", secureConfig.CookieName)
	}
	if secureConfig.KeyLookup != "form:csrf_token" {
		t.Fatalf("expected csrf key lookup form:csrf_token, got %q", secureConfig.KeyLookup)
	}

	insecureConfig := csrfMiddlewareConfig(false)
	if insecureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be disabled")
	}
}

func TestRootCommandDefaultsToExample(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CATALOG_DB_PATH", "")

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	want := "Symptoms of Anthracnose: brown_leaf_spots, stem_cankers, pod_rot\n" +
		"Diseases causing wilting: Fusarium Wilt, Water Stress\n"
	if out.String() != want {
		t.Fatalf("root output = %q, want %q", out.String(), want)
	}
}

func TestDiagnoseCommandWithoutSymptomsWarns(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CATALOG_DB_PATH", "")

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"diagnose"})

	err := root.Execute()
	if !errors.Is(err, cli.ErrNoSymptomsSelected) {
		t.Fatalf("expected ErrNoSymptomsSelected, got %v", err)
	}
	if !strings.Contains(errOut.String(), "Please select at least one symptom!") {
		t.Fatalf("expected warning on stderr, got %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", out.String())
	}
}

func TestExportThenReadCatalogFile(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CATALOG_DB_PATH", "")

	exportPath := filepath.Join(t.TempDir(), "catalog.json")
	root := newRootCommand()
	root.SetArgs([]string{"export", "--output", exportPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("export returned error: %v", err)
	}

	raw, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		t.Fatalf("expected JSON export inferred from file extension, got %q", string(raw))
	}

	var out bytes.Buffer
	reader := newRootCommand()
	reader.SetOut(&out)
	reader.SetArgs([]string{"--catalog-file", exportPath, "diseases", "wilting"})
	if err := reader.Execute(); err != nil {
		t.Fatalf("diseases returned error: %v", err)
	}
	if out.String() != "Fusarium Wilt\nWater Stress\n" {
		t.Fatalf("unexpected diseases output %q", out.String())
	}
}

func TestSymptomsCommandJoinsArguments(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CATALOG_DB_PATH", "")

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"symptoms", "water", "stress"})
	if err := root.Execute(); err != nil {
		t.Fatalf("symptoms returned error: %v", err)
	}
	if out.String() != "wilting\nleaf_drop\n" {
		t.Fatalf("unexpected symptoms output %q", out.String())
	}
}

type failingCloseWriter struct {
	bytes.Buffer
	closed bool
}

func (writer *failingCloseWriter) Close() error {
	writer.closed = true
	return errors.New("disk full")
}

func TestWriteExportReportsCloseError(t *testing.T) {
	writer := &failingCloseWriter{}

	err := writeExport(context.Background(), writer, services.BuiltinCatalogSource{}, "yaml")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected close error to be returned, got %v", err)
	}
	if !writer.closed {
		t.Fatal("expected export output to be closed")
	}
	if !strings.Contains(writer.String(), "Anthracnose") {
		t.Fatalf("expected catalog written before close, got %q", writer.String())
	}
}

func TestWriteExportKeepsEncodeErrorOverCloseError(t *testing.T) {
	writer := &failingCloseWriter{}

	err := writeExport(context.Background(), writer, services.BuiltinCatalogSource{}, "csv")
	if !errors.Is(err, catalogfile.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !writer.closed {
		t.Fatal("expected export output to be closed after a failed encode")
	}
}

func newTestServerApp(t *testing.T) *fiber.App {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	rootDir := filepath.Dir(filepath.Dir(filepath.Dir(testFile)))

	config := serverConfig{
		Port:            "8080",
		DefaultLanguage: "en",
		TemplatesDir:    filepath.Join(rootDir, "internal", "templates"),
		LocalesDir:      filepath.Join(rootDir, "internal", "i18n", "locales"),
		StaticDir:       filepath.Join(rootDir, "web", "static"),
	}

	i18nManager, err := i18n.NewManager(config.DefaultLanguage, config.LocalesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}
	handler, err := api.NewHandler(services.NewCatalogService(models.DefaultCatalog()), config.TemplatesDir, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return newApp(handler, config)
}

func TestAppRendersFormWithCSRFToken(t *testing.T) {
	app := newTestServerApp(t)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	csrfCookie := testResponseCookie(response.Cookies(), "beanleaf_csrf")
	if csrfCookie == nil || csrfCookie.Value == "" {
		t.Fatal("expected csrf cookie on form page")
	}
}

func TestAppRejectsFormPostWithoutCSRFToken(t *testing.T) {
	app := newTestServerApp(t)

	request := httptest.NewRequest(http.MethodPost, "/diagnose", strings.NewReader("symptoms=wilting"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST /diagnose failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 without csrf token, got %d", response.StatusCode)
	}
}

func TestAppSkipsCSRFForJSONAPI(t *testing.T) {
	app := newTestServerApp(t)

	request := httptest.NewRequest(http.MethodPost, "/api/diagnose", strings.NewReader(`{"symptoms":["wilting"]}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST /api/diagnose failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for api request, got %d", response.StatusCode)
	}
}

func TestAppServesStaticStylesheet(t *testing.T) {
	app := newTestServerApp(t)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/app.css", nil), -1)
	if err != nil {
		t.Fatalf("GET /static/app.css failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func testResponseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}
