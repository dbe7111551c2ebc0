package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodGet, "/api/health", nil, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	body := decodeJSONMap(t, response)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}

func TestUpdateProfileAcknowledgesPrivacyMode(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPut, "/api/patient/profile", fiber.Map{
		"phone": "+1-555-000-0000",
	}, privacyHeader())
	body := decodeJSONMap(t, response)
	if body["success"] != true {
		t.Fatalf("expected success, got %+v", body)
	}
	if body["message"] != "Privacy Mode: Changes not saved to persistent storage" {
		t.Fatalf("expected the privacy acknowledgement, got %+v", body)
	}

	response = performJSON(t, app, fiber.MethodPut, "/api/patient/profile", fiber.Map{
		"phone": "+1-555-000-0000",
	}, nil)
	body = decodeJSONMap(t, response)
	if body["message"] != "Profile updated successfully" {
		t.Fatalf("expected the normal acknowledgement, got %+v", body)
	}
}

func TestPatientProfileFixture(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodGet, "/api/patient/profile", nil, nil)
	profile := decodeJSONMap(t, response)
	if profile["firstName"] != "Sarah" || profile["mrn"] != "MRN-4892847" {
		t.Fatalf("unexpected profile fixture: %+v", profile)
	}
}

func TestLabResultsAndAppointmentsServeFixtures(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	labs := decodeJSONSlice(t, performJSON(t, app, fiber.MethodGet, "/api/lab-results", nil, nil))
	if len(labs) == 0 {
		t.Fatal("expected lab result fixtures")
	}

	appointments := decodeJSONSlice(t, performJSON(t, app, fiber.MethodGet, "/api/appointments", nil, nil))
	if len(appointments) == 0 {
		t.Fatal("expected appointment fixtures")
	}
}
