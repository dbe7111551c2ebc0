package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCheckInteractionsWarnsOnKnownPair(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/interactions", fiber.Map{
		"drugs": []string{"Aspirin", "metformin", "Warfarin"},
	}, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	body := decodeJSONMap(t, response)
	if body["status"] != "warning" {
		t.Fatalf("expected warning, got %+v", body)
	}
	data, _ := body["data"].(map[string]any)
	if data["severity"] != "High" {
		t.Fatalf("unexpected interaction data: %+v", data)
	}
}

func TestCheckInteractionsReportsSafe(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/interactions", fiber.Map{
		"drugs": []string{"metformin", "vitamin d"},
	}, nil)
	body := decodeJSONMap(t, response)
	if body["status"] != "safe" {
		t.Fatalf("expected safe, got %+v", body)
	}
}

func TestCheckInteractionsRejectsMissingList(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/interactions", fiber.Map{}, nil)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without a drugs list, got %d", response.StatusCode)
	}
	response.Body.Close()
}
