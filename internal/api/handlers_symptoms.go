package api

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const recentSymptomsLimit = 50

type analyzeSymptomPayload struct {
	Symptom   string `json:"symptom"`
	Timestamp string `json:"timestamp"`
}

type followUpPayload struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SymptomID uint   `json:"symptomId"`
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	symptoms, err := handler.symptoms.Recent(recentSymptomsLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	return c.JSON(symptoms)
}

// AnalyzeSymptom records the observation (suppressed under privacy mode)
// and always returns the scripted analysis, so the UI behaves the same
// either way.
func (handler *Handler) AnalyzeSymptom(c *fiber.Ctx) error {
	payload := analyzeSymptomPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	payload.Symptom = strings.TrimSpace(payload.Symptom)
	if payload.Symptom == "" {
		return apiError(c, fiber.StatusBadRequest, "symptom is required")
	}

	timestamp := parseClientTimestamp(payload.Timestamp)
	if err := handler.symptoms.RecordReported(payload.Symptom, timestamp, privacyMode(c)); err != nil {
		// The analysis is still useful without the write.
		log.Printf("store symptom: %v", err)
	}

	return c.JSON(handler.symptoms.Analyze(payload.Symptom))
}

func (handler *Handler) SymptomPatterns(c *fiber.Ctx) error {
	patterns, err := handler.symptoms.DetectPatterns()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to detect patterns")
	}
	return c.JSON(patterns)
}

func (handler *Handler) SymptomFollowUp(c *fiber.Ctx) error {
	payload := followUpPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	return c.JSON(fiber.Map{
		"analysis": handler.symptoms.FollowUpAcknowledgement(payload.Answer),
	})
}

// parseClientTimestamp tolerates a missing or malformed client timestamp
// by falling back to the zero value, which the store replaces with server
// now. The day key is never derived from the client value alone.
func parseClientTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
