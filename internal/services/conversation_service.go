package services

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ChatContextSymptomLog = "symptom-log"
	ChatContextMedPrep    = "med-prep"

	CheckInStepMood       = "mood"
	CheckInStepAdherence  = "adherence"
	CheckInStepSymptoms   = "symptoms"
	CheckInStepVitalSigns = "vitalSigns"
)

var severityDigitsPattern = regexp.MustCompile(`\d+`)

type ChatReply struct {
	Text   string  `json:"text"`
	Action *string `json:"action"`
}

type CheckInReply struct {
	NextQuestion string            `json:"nextQuestion"`
	UpdatedData  map[string]string `json:"updatedData"`
	IsComplete   bool              `json:"isComplete"`
}

// ConversationService drives the scripted chat and daily check-in flows.
// These are linear prompt/response tables, not language understanding;
// their only real side effect is an occasional symptom write, which
// privacy mode suppresses.
type ConversationService struct {
	symptoms *SymptomService
}

func NewConversationService(symptoms *SymptomService) *ConversationService {
	return &ConversationService{symptoms: symptoms}
}

func (service *ConversationService) Chat(text string, context string, privacyMode bool) ChatReply {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch context {
	case ChatContextSymptomLog:
		return service.chatSymptomLog(normalized, privacyMode)
	case ChatContextMedPrep:
		return ChatReply{Text: "I've pulled your health summary. Your BP has been slightly elevated this week. I've sent a detailed report to your secure inbox for Dr. Smith."}
	default:
		return service.chatGeneral(normalized, privacyMode)
	}
}

func (service *ConversationService) chatSymptomLog(normalized string, privacyMode bool) ChatReply {
	switch {
	case strings.Contains(normalized, "pain") || strings.Contains(normalized, "hurt") || strings.Contains(normalized, "ache"):
		return ChatReply{
			Text:   "I've noted that. On a scale of 1 to 10, how severe is the pain?",
			Action: chatAction("ask_severity"),
		}
	case severityDigitsPattern.MatchString(normalized):
		severityText := severityDigitsPattern.FindString(normalized)
		severity, err := strconv.Atoi(severityText)
		if err != nil {
			severity = defaultRecordedSeverity
		}
		if err := service.symptoms.Record("Pain reported via voice", severity, time.Time{}, privacyMode); err != nil {
			log.Printf("record voice symptom: %v", err)
		}
		return ChatReply{
			Text:   fmt.Sprintf("Got it. Severity %s. I've logged this symptom to your journal. Any other symptoms?", severityText),
			Action: chatAction("log_complete"),
		}
	default:
		return ChatReply{Text: "I'm ready to log. Describe your symptoms."}
	}
}

func (service *ConversationService) chatGeneral(normalized string, privacyMode bool) ChatReply {
	switch {
	case strings.Contains(normalized, "dizzy") || strings.Contains(normalized, "dizziness"):
		if err := service.symptoms.Record("Dizziness (Side Effect)", defaultRecordedSeverity, time.Time{}, privacyMode); err != nil {
			log.Printf("record side effect: %v", err)
		}
		return ChatReply{Text: "Dizziness can be a side effect of Lisinopril. I'm logging this interaction. Please sit down and drink some water."}
	case strings.Contains(normalized, "hello") || strings.Contains(normalized, "hi"):
		return ChatReply{Text: "Hello, John. I'm here to help manage your health. How are you feeling?"}
	default:
		return ChatReply{Text: "I understand. I've updated your daily log."}
	}
}

// CheckIn advances the fixed mood → adherence → symptoms → vitals
// sequence by one step.
func (service *ConversationService) CheckIn(text string, currentStep string) CheckInReply {
	reply := CheckInReply{UpdatedData: make(map[string]string)}

	switch currentStep {
	case CheckInStepMood:
		reply.UpdatedData["mood"] = text
		reply.NextQuestion = "Understood. Have you taken your morning Metformin and Lisinopril today?"
	case CheckInStepAdherence:
		reply.UpdatedData["adherence"] = text
		reply.NextQuestion = "And any symptoms like dizziness or fatigue occurring today?"
	case CheckInStepSymptoms:
		reply.UpdatedData["symptoms"] = text
		reply.NextQuestion = "Lastly, did you record your blood pressure today? If so, what was the reading?"
	case CheckInStepVitalSigns:
		reply.UpdatedData["vitalSigns"] = text
		reply.IsComplete = true
	}
	return reply
}

func chatAction(action string) *string {
	return &action
}
