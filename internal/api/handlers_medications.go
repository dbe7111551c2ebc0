package api

import (
	"strings"

	"github.com/chronicare/copilot/internal/models"
	"github.com/gofiber/fiber/v2"
)

type medicationPayload struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	TimeOfDay string `json:"time"`
}

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	medications, err := handler.stores.Store().ListMedications()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load medications")
	}
	return c.JSON(medications)
}

// CreateMedication persists unconditionally: medication list edits are
// exempt from privacy mode.
func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	payload := medicationPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "medication name is required")
	}

	id, err := handler.stores.Store().InsertMedication(payload.Name, payload.Dosage, payload.Frequency, payload.TimeOfDay)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create medication")
	}

	return c.JSON(models.Medication{
		ID:        id,
		Name:      payload.Name,
		Dosage:    payload.Dosage,
		Frequency: payload.Frequency,
		TimeOfDay: payload.TimeOfDay,
	})
}

// DeleteMedication is idempotent: deleting an unknown id is a no-op
// success so client retries stay safe.
func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	if _, err := handler.stores.Store().DeleteMedication(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete medication")
	}
	return c.JSON(fiber.Map{"success": true})
}
