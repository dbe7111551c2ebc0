package api

import "github.com/gofiber/fiber/v2"

const (
	privacyHeaderName = "X-Privacy-Mode"
	contextPrivacyKey = "privacy_mode"
)

// PrivacyGate derives the request-scoped privacy flag from the inbound
// header. Only the exact value "true" activates it; the flag lives in the
// request locals and never crosses requests.
//
// Downstream, the flag suppresses mutating adherence and symptom writes
// entirely. It never affects reads, and never affects medication
// create/delete.
func (handler *Handler) PrivacyGate(c *fiber.Ctx) error {
	c.Locals(contextPrivacyKey, c.Get(privacyHeaderName) == "true")
	return c.Next()
}

func privacyMode(c *fiber.Ctx) bool {
	flag, _ := c.Locals(contextPrivacyKey).(bool)
	return flag
}
