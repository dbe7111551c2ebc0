package api

import (
	"github.com/chronicare/copilot/internal/services"
	"github.com/gofiber/fiber/v2"
)

type interactionsPayload struct {
	Drugs []string `json:"drugs"`
}

func (handler *Handler) CheckInteractions(c *fiber.Ctx) error {
	payload := interactionsPayload{}
	if err := c.BodyParser(&payload); err != nil || payload.Drugs == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if match, found := services.FindInteraction(payload.Drugs); found {
		return c.JSON(fiber.Map{"status": "warning", "data": match})
	}
	return c.JSON(fiber.Map{
		"status":  "safe",
		"message": "No significant interactions found in our database.",
	})
}
