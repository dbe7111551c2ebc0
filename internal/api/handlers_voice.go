package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

const elevenLabsTTSURL = "https://api.elevenlabs.io/v1/text-to-speech/"

const defaultVoice = "empathetic-female"

var voiceIDs = map[string]string{
	"empathetic-female":   "21m00Tcm4TlvDq8ikWAM", // Rachel
	"professional-female": "EXAVITQu4vr4xnSDxMaL", // Bella
	"calm-male":           "pNInz6obpgDQGcFmaJgB", // Adam
}

type speakPayload struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type ttsPayload struct {
	Text string `json:"text"`
}

type ttsRequestBody struct {
	Text          string           `json:"text"`
	ModelID       string           `json:"model_id"`
	VoiceSettings ttsVoiceSettings `json:"voice_settings"`
}

type ttsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Speak proxies text to the voice provider and hands the client a data
// URL. An unconfigured key or an upstream failure degrades to a null
// audio response; voice output is optional and must never block the
// tracking surfaces.
func (handler *Handler) Speak(c *fiber.Ctx) error {
	payload := speakPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if handler.elevenLabsKey == "" {
		return c.JSON(fiber.Map{"audioUrl": nil, "message": "TTS not configured"})
	}

	voiceID, ok := voiceIDs[payload.Voice]
	if !ok {
		voiceID = voiceIDs[defaultVoice]
	}

	audio, err := handler.synthesizeSpeech(voiceID, payload.Text, 0.6, 0.75)
	if err != nil {
		log.Printf("tts upstream failed: %v", err)
		return c.JSON(fiber.Map{"audioUrl": nil, "error": "TTS failed"})
	}

	audioURL := "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio)
	return c.JSON(fiber.Map{"audioUrl": audioURL})
}

// TextToSpeech is the raw-audio variant of the proxy.
func (handler *Handler) TextToSpeech(c *fiber.Ctx) error {
	payload := ttsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if handler.elevenLabsKey == "" {
		return apiError(c, fiber.StatusInternalServerError, "ElevenLabs API Key not configured")
	}

	audio, err := handler.synthesizeSpeech(voiceIDs[defaultVoice], payload.Text, 0.5, 0.5)
	if err != nil {
		log.Printf("tts upstream failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "Failed to generate speech")
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}

func (handler *Handler) synthesizeSpeech(voiceID string, text string, stability float64, similarity float64) ([]byte, error) {
	body, err := json.Marshal(ttsRequestBody{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
		VoiceSettings: ttsVoiceSettings{
			Stability:       stability,
			SimilarityBoost: similarity,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode tts request: %w", err)
	}

	agent := fiber.AcquireAgent()
	request := agent.Request()
	request.Header.SetMethod(fiber.MethodPost)
	request.SetRequestURI(elevenLabsTTSURL + voiceID)
	request.Header.SetContentType(fiber.MIMEApplicationJSON)
	request.Header.Set(fiber.HeaderAccept, "audio/mpeg")
	request.Header.Set("xi-api-key", handler.elevenLabsKey)
	agent.Body(body)

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("prepare tts request: %w", err)
	}

	statusCode, audio, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("tts request: %w", errs[0])
	}
	if statusCode != fiber.StatusOK {
		return nil, fmt.Errorf("tts request: unexpected status %d", statusCode)
	}
	return audio, nil
}
