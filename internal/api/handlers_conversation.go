package api

import "github.com/gofiber/fiber/v2"

type chatPayload struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

type checkInPayload struct {
	Text        string `json:"text"`
	CurrentStep string `json:"currentStep"`
}

func (handler *Handler) Chat(c *fiber.Ctx) error {
	payload := chatPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	return c.JSON(handler.conversations.Chat(payload.Text, payload.Context, privacyMode(c)))
}

func (handler *Handler) ProcessCheckIn(c *fiber.Ctx) error {
	payload := checkInPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	return c.JSON(handler.conversations.CheckIn(payload.Text, payload.CurrentStep))
}
