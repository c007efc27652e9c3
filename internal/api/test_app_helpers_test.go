package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/beanleaf/internal/i18n"
	"github.com/terraincognita07/beanleaf/internal/models"
	"github.com/terraincognita07/beanleaf/internal/services"
)

func testTemplatesDir(t *testing.T) string {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	return filepath.Join(filepath.Dir(filepath.Dir(testFile)), "templates")
}

func newCatalogTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newCatalogTestAppWithCookieSecure(t, false)
}

func newCatalogTestAppWithCookieSecure(t *testing.T, cookieSecure bool) *fiber.App {
	t.Helper()

	templatesDir := testTemplatesDir(t)
	localesDir := filepath.Join(filepath.Dir(templatesDir), "i18n", "locales")

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	catalog := services.NewCatalogService(models.DefaultCatalog())
	handler, err := NewHandler(catalog, templatesDir, i18nManager, cookieSecure)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) (*http.Response, string) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d", request.Method, request.URL.Path, expectedStatus, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.Method, request.URL.Path, err)
	}
	return response, string(body)
}

func getPage(t *testing.T, app *fiber.App, path string, expectedStatus int) string {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept-Language", "en")
	_, body := doRequest(t, app, request, expectedStatus)
	return body
}

func decodeJSONBody(t *testing.T, body string, target any) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("decode response body %q: %v", body, err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body string) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

func assertContainsAll(t *testing.T, rendered string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected rendered output to include %q", fragment)
		}
	}
}
