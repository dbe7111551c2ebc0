package api

import "github.com/gofiber/fiber/v2"

type logDosePayload struct {
	Status string `json:"status"`
}

func (handler *Handler) TodayAdherence(c *fiber.Ctx) error {
	entries, err := handler.ledger.LogsForToday()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load adherence logs")
	}
	return c.JSON(entries)
}

func (handler *Handler) LogDose(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	payload := logDosePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := handler.ledger.LogDose(medicationID, payload.Status, privacyMode(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log dose")
	}
	return c.JSON(result)
}
