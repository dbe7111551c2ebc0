package api

import (
	"fmt"
	"log"
	"time"

	"github.com/chronicare/copilot/internal/store"
	"github.com/gofiber/fiber/v2"
)

type prepareAppointmentPayload struct {
	AppointmentID uint   `json:"appointmentId"`
	Specialty     string `json:"specialty"`
}

type shareAppointmentPayload struct {
	AppointmentID uint `json:"appointmentId"`
}

func dayParamToday(handler *Handler) string {
	return store.DayKey(time.Now(), handler.location)
}

func (handler *Handler) Appointments(c *fiber.Ctx) error {
	tomorrow := store.DayKey(time.Now().AddDate(0, 0, 1), handler.location)
	return c.JSON([]fiber.Map{
		{
			"id":        1,
			"doctor":    "Dr. Sarah Johnson",
			"specialty": "Cardiology",
			"date":      tomorrow,
			"time":      "14:00",
			"location":  "Heart Center, 3rd Floor",
			"type":      "Follow-up",
			"status":    "upcoming",
		},
	})
}

func (handler *Handler) PrepareAppointment(c *fiber.Ctx) error {
	payload := prepareAppointmentPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	return c.JSON(fiber.Map{
		"summary": fmt.Sprintf("Preparing for your %s appointment", payload.Specialty),
		"keyTopics": []string{
			"Recent blood pressure elevations (60% of mornings)",
			"Dizziness episodes (3 times this week)",
			"Medication adjustment needed for Lisinopril",
			"Low potassium levels from recent lab work",
		},
		"suggestedQuestions": []string{
			"Should we adjust my blood pressure medication due to morning elevations?",
			"Could my dizziness be related to low potassium levels?",
			"Do I need to add a potassium supplement?",
			"What lifestyle changes can help stabilize my blood pressure?",
		},
		"recentSymptoms": []fiber.Map{
			{"symptom": "Dizziness", "frequency": "3 times this week", "severity": "Moderate"},
			{"symptom": "Morning headaches", "frequency": "4 days this week", "severity": "Mild"},
		},
		"medications": []fiber.Map{
			{"name": "Lisinopril", "dose": "10mg", "frequency": "Daily", "adherence": "95%"},
			{"name": "Metformin", "dose": "500mg", "frequency": "Twice daily", "adherence": "98%"},
		},
		"labResults": []fiber.Map{
			{"test": "Blood Pressure", "value": "145/92 mmHg", "status": "Elevated", "trend": "Worsening"},
			{"test": "Potassium", "value": "3.2 mEq/L", "status": "Low", "trend": "Declining"},
		},
		"actionItems": []string{
			"Bring updated medication list",
			"Bring blood pressure log from past 2 weeks",
			"Discuss potassium supplementation",
		},
		"voiceSummary": fmt.Sprintf("Good morning! Let me help you prepare for your %s appointment. Based on your recent health data, here are the key topics to discuss: Your blood pressure has been elevated 60%% of mornings. You've experienced dizziness 3 times this week, which could be related to your recent lab results showing low potassium. I recommend asking your doctor about adjusting your Lisinopril dosage and whether you need potassium supplementation.", payload.Specialty),
	})
}

func (handler *Handler) ShareAppointment(c *fiber.Ctx) error {
	payload := shareAppointmentPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	log.Printf("sharing appointment prep with doctor: %d", payload.AppointmentID)
	return c.JSON(fiber.Map{"success": true, "message": "Summary shared with your doctor"})
}
