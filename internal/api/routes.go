package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.PrivacyGate)

	api.Get("/health", handler.Health)

	api.Get("/medications", handler.ListMedications)
	api.Post("/medications", handler.CreateMedication)
	api.Delete("/medications/:id", handler.DeleteMedication)
	api.Post("/medications/:id/log", handler.LogDose)
	api.Get("/adherence", handler.TodayAdherence)

	api.Get("/symptoms", handler.ListSymptoms)
	api.Get("/symptoms/patterns", handler.SymptomPatterns)
	api.Post("/symptoms/analyze", handler.AnalyzeSymptom)
	api.Post("/symptoms/follow-up", handler.SymptomFollowUp)

	api.Post("/interactions", handler.CheckInteractions)
	api.Post("/chat", handler.Chat)
	api.Post("/check-in/process", handler.ProcessCheckIn)

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/verify-mfa", handler.VerifyMFA)
	auth.Post("/voice-verify", handler.VoiceVerify)

	patient := api.Group("/patient")
	patient.Get("/profile", handler.PatientProfile)
	patient.Put("/profile", handler.UpdatePatientProfile)
	patient.Get("/mfa-status", handler.MFAStatus)
	patient.Get("/access-logs", handler.AccessLogs)

	api.Get("/lab-results", handler.LabResults)
	api.Post("/lab-results/explain", handler.ExplainLabResult)

	api.Get("/appointments", handler.Appointments)
	api.Post("/appointments/prepare", handler.PrepareAppointment)
	api.Post("/appointments/share", handler.ShareAppointment)

	api.Post("/voice/speak", handler.Speak)
	api.Post("/elevenlabs/tts", handler.TextToSpeech)
}
