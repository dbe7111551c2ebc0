package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// The profile surface is fixture-backed: the core contract covers
// medications, adherence and symptoms only.

func (handler *Handler) PatientProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"patient_id":  "UUID-1234567890",
		"firstName":   "Sarah",
		"lastName":    "Johnson",
		"dateOfBirth": "1965-03-15",
		"email":       demoAccountEmail,
		"phone":       "+1-555-123-4567",
		"mrn":         "MRN-4892847",
		"verification": fiber.Map{
			"email_verified":           true,
			"phone_verified":           true,
			"identity_verified":        true,
			"voice_biometric_enrolled": true,
			"mfa_enabled":              true,
			"status":                   "fully_verified",
		},
		"conditions": []fiber.Map{
			{"id": "cond-001", "name": "Type 2 Diabetes Mellitus", "icd10Code": "E11.9", "diagnosisDate": "2018-06-10", "severity": "moderate", "status": "active"},
			{"id": "cond-002", "name": "Hypertension (Essential)", "icd10Code": "I10", "diagnosisDate": "2015-11-20", "severity": "mild", "status": "active"},
		},
		"allergies": []fiber.Map{
			{"id": "allergy-001", "allergen": "Penicillin", "reactionType": "Anaphylaxis", "severity": "severe", "notes": "Avoid all penicillin-based medications."},
		},
		"careTeam": []fiber.Map{
			{"name": "Dr. Sarah Smith", "specialty": "Primary Care", "accessExpires": "2026-07-15"},
			{"name": "Dr. Raj Patel", "specialty": "Cardiology", "accessExpires": "2026-04-15"},
		},
		"lastLogin": time.Now().In(handler.location).Format(time.RFC3339),
		"device":    "Chrome on Windows",
		"createdAt": "2024-01-15T08:30:00Z",
	})
}

// UpdatePatientProfile honors privacy mode with a plausible success
// response while persisting nothing.
func (handler *Handler) UpdatePatientProfile(c *fiber.Ctx) error {
	if privacyMode(c) {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Privacy Mode: Changes not saved to persistent storage",
		})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Profile updated successfully"})
}

func (handler *Handler) MFAStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"enabled":      true,
		"methods":      []string{"email_otp", "sms_otp", "biometric"},
		"lastVerified": time.Now().In(handler.location).Format(time.RFC3339),
	})
}

func (handler *Handler) AccessLogs(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	return c.JSON([]fiber.Map{
		{"timestamp": now.Add(-time.Hour).Format(time.RFC3339), "user": "Sarah Johnson", "action": "Successful MFA Login", "device": "Chrome on Windows"},
		{"timestamp": now.Add(-24 * time.Hour).Format(time.RFC3339), "user": "Dr. Sarah Smith", "action": "Viewed health summary", "device": "EHR System"},
		{"timestamp": now.Add(-48 * time.Hour).Format(time.RFC3339), "user": "CVS Pharmacy", "action": "Refill request processed", "device": "Pharmacy Portal"},
	})
}
