package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/chronicare/copilot/internal/store"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Selector) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "copilot-test.db")
	stores := store.NewSelector(
		func() (store.Store, error) {
			durable, err := store.OpenSQLite(databasePath, time.UTC)
			if err != nil {
				return nil, err
			}
			return durable, nil
		},
		func() store.Store {
			return store.NewMemoryStore(time.UTC)
		},
	)

	handler := NewHandler(stores, "test-secret-key", time.UTC, "")
	app := fiber.New()
	RegisterRoutes(app, handler)

	t.Cleanup(func() {
		if durable, ok := stores.Store().(*store.SQLiteStore); ok {
			_ = durable.Close()
		}
	})
	return app, stores
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	for name, value := range headers {
		request.Header.Set(name, value)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONMap(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func decodeJSONSlice(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := []map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func privacyHeader() map[string]string {
	return map[string]string{privacyHeaderName: "true"}
}
