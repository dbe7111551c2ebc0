package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "sarah.johnson@example.com", password: "hunter2"},
		{name: "unknown account", email: "nobody@example.com", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := performJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
				"email":    tt.email,
				"password": tt.password,
			}, nil)
			if response.StatusCode != fiber.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", response.StatusCode)
			}
			body := decodeJSONMap(t, response)
			if body["message"] != "Invalid email or password" {
				t.Fatalf("unexpected message: %+v", body)
			}
		})
	}
}

func TestLoginThenMFAIssuesSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "Sarah.Johnson@Example.com",
		"password": "password123",
	}, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login: status %d", response.StatusCode)
	}
	login := decodeJSONMap(t, response)
	if login["mfaRequired"] != true {
		t.Fatalf("expected mfaRequired, got %+v", login)
	}
	mfaToken, _ := login["mfaToken"].(string)
	if mfaToken == "" {
		t.Fatal("expected an mfa token")
	}

	response = performJSON(t, app, fiber.MethodPost, "/api/auth/verify-mfa", fiber.Map{
		"mfaToken": mfaToken,
		"mfaCode":  "123456",
	}, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("verify-mfa: status %d", response.StatusCode)
	}
	session := decodeJSONMap(t, response)

	sessionToken, _ := session["sessionToken"].(string)
	claims := sessionClaims{}
	parsed, err := jwt.ParseWithClaims(sessionToken, &claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret-key"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("session token does not verify: %v", err)
	}
	if claims.Subject != "sarah.johnson@example.com" || claims.Purpose != "session" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if session["refreshToken"] == "" {
		t.Fatal("expected a refresh token")
	}
	if session["expiresIn"] != float64(3600) {
		t.Fatalf("expected expiresIn 3600, got %v", session["expiresIn"])
	}
}

func TestVerifyMFATokenIsSingleUse(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "sarah.johnson@example.com",
		"password": "password123",
	}, nil)
	login := decodeJSONMap(t, response)
	mfaToken, _ := login["mfaToken"].(string)

	first := performJSON(t, app, fiber.MethodPost, "/api/auth/verify-mfa", fiber.Map{
		"mfaToken": mfaToken,
		"mfaCode":  "123456",
	}, nil)
	if first.StatusCode != fiber.StatusOK {
		t.Fatalf("first verification: status %d", first.StatusCode)
	}
	first.Body.Close()

	second := performJSON(t, app, fiber.MethodPost, "/api/auth/verify-mfa", fiber.Map{
		"mfaToken": mfaToken,
		"mfaCode":  "123456",
	}, nil)
	if second.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected replayed token to fail, got %d", second.StatusCode)
	}
	second.Body.Close()
}

func TestVerifyMFARejectsWrongCode(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "sarah.johnson@example.com",
		"password": "password123",
	}, nil)
	login := decodeJSONMap(t, response)
	mfaToken, _ := login["mfaToken"].(string)

	response = performJSON(t, app, fiber.MethodPost, "/api/auth/verify-mfa", fiber.Map{
		"mfaToken": mfaToken,
		"mfaCode":  "000000",
	}, nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestVoiceVerifyMatchesPassphrase(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	tests := []struct {
		name       string
		transcript string
		verified   bool
	}{
		{name: "exact phrase", transcript: "my health is my priority", verified: true},
		{name: "punctuated and cased", transcript: "My health is my priority!", verified: true},
		{name: "embedded in sentence", transcript: "okay, my health is my priority, done", verified: true},
		{name: "different phrase", transcript: "open sesame", verified: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := performJSON(t, app, fiber.MethodPost, "/api/auth/voice-verify", fiber.Map{
				"transcript": tt.transcript,
			}, nil)
			body := decodeJSONMap(t, response)
			if body["verified"] != tt.verified {
				t.Fatalf("verified = %v, want %v", body["verified"], tt.verified)
			}
		})
	}
}
