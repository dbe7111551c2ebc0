package api

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Authentication here is a deliberate mock: one demo account, a static
// MFA code, and signed-but-unchecked session tokens. Real multi-tenant
// authorization is out of scope.
const (
	demoAccountEmail = "sarah.johnson@example.com"
	demoAccountPass  = "password123"
	demoMFACode      = "123456"

	voiceVerifyPhrase = "my health is my priority"
)

var demoPasswordHash = mustHashDemoPassword()

func mustHashDemoPassword() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoAccountPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash demo password: %v", err)
	}
	return hash
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyMFAPayload struct {
	MFAToken string `json:"mfaToken"`
	MFACode  string `json:"mfaCode"`
}

type voiceVerifyPayload struct {
	Transcript string `json:"transcript"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email != demoAccountEmail ||
		bcrypt.CompareHashAndPassword(demoPasswordHash, []byte(payload.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	token := handler.pendingMFA.issue(email, time.Now())
	return c.JSON(fiber.Map{
		"mfaRequired": true,
		"mfaToken":    token,
		"message":     "MFA code sent to your verified phone number",
	})
}

func (handler *Handler) VerifyMFA(c *fiber.Ctx) error {
	payload := verifyMFAPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	now := time.Now()
	email, ok := handler.pendingMFA.consume(payload.MFAToken, now)
	if !ok || payload.MFACode != demoMFACode {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid MFA code"})
	}

	sessionToken, err := handler.signToken(email, "session", now, sessionTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	refreshToken, err := handler.signToken(email, "refresh", now, refreshTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}

	return c.JSON(fiber.Map{
		"sessionToken": sessionToken,
		"refreshToken": refreshToken,
		"expiresIn":    int(sessionTokenTTL.Seconds()),
	})
}

func (handler *Handler) VoiceVerify(c *fiber.Ctx) error {
	payload := voiceVerifyPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	normalized := strings.ToLower(payload.Transcript)
	normalized = strings.NewReplacer(".", "", ",", "", "!", "").Replace(normalized)
	if strings.Contains(normalized, voiceVerifyPhrase) {
		return c.JSON(fiber.Map{"verified": true, "message": "Voice identity confirmed"})
	}
	return c.JSON(fiber.Map{"verified": false, "message": "Voice not recognized"})
}

func (handler *Handler) signToken(email string, purpose string, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
