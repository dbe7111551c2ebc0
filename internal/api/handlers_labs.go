package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type explainLabPayload struct {
	TestName       string `json:"testName"`
	Value          any    `json:"value"`
	ReferenceRange string `json:"referenceRange"`
	PreviousValue  any    `json:"previousValue"`
}

// Lab results are fixtures; a production build would read them from a
// FHIR/EHR integration.
func (handler *Handler) LabResults(c *fiber.Ctx) error {
	today := dayParamToday(handler)
	return c.JSON([]fiber.Map{
		{
			"id":             1,
			"testName":       "HbA1c",
			"value":          7.2,
			"unit":           "%",
			"referenceRange": "< 5.7",
			"status":         "improving",
			"previousValue":  8.1,
			"date":           today,
			"interpretation": "Prediabetic range",
			"trend":          "down",
			"changePercent":  -11.1,
		},
		{
			"id":             2,
			"testName":       "Potassium",
			"value":          3.2,
			"unit":           "mEq/L",
			"referenceRange": "3.5 - 5.0",
			"status":         "low",
			"previousValue":  3.8,
			"date":           today,
			"interpretation": "Below normal range",
			"trend":          "down",
			"changePercent":  -15.8,
		},
	})
}

func (handler *Handler) ExplainLabResult(c *fiber.Ctx) error {
	payload := explainLabPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	var explanation string
	switch payload.TestName {
	case "HbA1c":
		explanation = fmt.Sprintf("Your HbA1c is %v%%, down from %v%% last quarter. That's great progress! This test measures your average blood sugar over the past 3 months. You're in the prediabetic range, but moving in the right direction. Keep up with your current medications and lifestyle changes.", payload.Value, payload.PreviousValue)
	case "Potassium":
		explanation = fmt.Sprintf("Your potassium is %v, which is below the normal range. Low potassium can cause muscle weakness, fatigue, and irregular heartbeat. This might be related to your blood pressure medication. Contact your doctor today to discuss whether you need a potassium supplement or dietary changes.", payload.Value)
	default:
		explanation = fmt.Sprintf("Your %s is %v. Reference range is %s.", payload.TestName, payload.Value, payload.ReferenceRange)
		if payload.PreviousValue != nil {
			explanation = fmt.Sprintf("%s Previous value was %v.", explanation, payload.PreviousValue)
		}
	}

	return c.JSON(fiber.Map{"explanation": explanation})
}
