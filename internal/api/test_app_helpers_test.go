package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/eczema-tracker/internal/db"
	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/photos"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

var testNow = time.Date(2024, 3, 4, 10, 0, 0, 123_000_000, time.UTC)

// pngFixture is enough of a PNG for content sniffing.
var pngFixture = append([]byte("\x89PNG\r\n\x1a\n"), []byte("\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")...)

type testEnv struct {
	app      *fiber.App
	handler  *Handler
	journal  *services.JournalService
	photoDir string
}

func newTestEnv(t *testing.T, clientDir string) testEnv {
	t.Helper()

	root := t.TempDir()
	documents := db.NewJSONDocumentRepository(filepath.Join(root, "data", "eczema-data.json"))
	if err := documents.Init(); err != nil {
		t.Fatalf("init document repository: %v", err)
	}
	return newTestEnvWithDocuments(t, root, clientDir, documents)
}

func newSQLiteTestEnv(t *testing.T) testEnv {
	t.Helper()

	root := t.TempDir()
	database, err := db.OpenSQLite(filepath.Join(root, "data", "eczema.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	documents := db.NewSQLiteDocumentRepository(database)
	if err := documents.Init(); err != nil {
		t.Fatalf("init document repository: %v", err)
	}
	return newTestEnvWithDocuments(t, root, "", documents)
}

func newTestEnvWithDocuments(t *testing.T, root string, clientDir string, documents services.DocumentRepository) testEnv {
	t.Helper()

	photoDir := filepath.Join(root, "data", "photos")
	photoStore := photos.NewDirStore(photoDir)
	if err := photoStore.Init(); err != nil {
		t.Fatalf("init photo store: %v", err)
	}

	clock := func() time.Time { return testNow }
	journal := services.NewJournalService(documents, photoStore).WithClock(clock)
	handler := NewHandler(journal, time.UTC, clientDir)
	handler.now = clock

	app := fiber.New()
	RegisterRoutes(app, handler)

	return testEnv{app: app, handler: handler, journal: journal, photoDir: photoDir}
}

func (env testEnv) do(t *testing.T, request *http.Request) *http.Response {
	t.Helper()

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func (env testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	return env.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (env testEnv) postJSON(t *testing.T, path string, body string) *http.Response {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return env.do(t, request)
}

func (env testEnv) uploadPhoto(t *testing.T, path string, field string, filename string, data []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return env.do(t, request)
}

func (env testEnv) loadDocument(t *testing.T) models.Document {
	t.Helper()
	return env.journal.LoadDocument()
}

func assertStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, body)
	}
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(raw)
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func assertAPIError(t *testing.T, response *http.Response, status int, message string) {
	t.Helper()
	if response.StatusCode != status {
		t.Fatalf("expected status %d, got %d", status, response.StatusCode)
	}
	if got := readAPIError(t, response.Body); got != message {
		t.Fatalf("expected error %q, got %q", message, got)
	}
}
