package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chronicare/copilot/internal/models"
	"github.com/chronicare/copilot/internal/store"
)

var ErrSymptomWriteFailed = errors.New("symptom write failed")

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	defaultRecordedSeverity = 5
	patternWindowDays       = 7
	patternDizzinessMin     = 3
)

type FollowUpQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type SymptomAnalysis struct {
	Analysis string             `json:"analysis"`
	Severity string             `json:"severity"`
	Tags     []string           `json:"tags"`
	FollowUp []FollowUpQuestion `json:"followUp"`
}

type SymptomPattern struct {
	Message string `json:"message"`
}

// SymptomService records symptom observations and produces the scripted
// analysis responses. Recording honors privacy mode; analysis never
// touches storage.
type SymptomService struct {
	stores   *store.Selector
	location *time.Location
}

func NewSymptomService(stores *store.Selector, location *time.Location) *SymptomService {
	if location == nil {
		location = time.UTC
	}
	return &SymptomService{stores: stores, location: location}
}

// Record appends a symptom row unless privacy mode is active, in which
// case the write is silently suppressed.
func (service *SymptomService) Record(description string, severity int, timestamp time.Time, privacyMode bool) error {
	if privacyMode {
		log.Printf("[privacy] suppressing symptom write")
		return nil
	}
	if _, err := service.stores.Store().InsertSymptom(description, severity, timestamp); err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomWriteFailed, err)
	}
	return nil
}

// RecordReported stores a free-text symptom with the default severity at
// the given observation time (zero means server now).
func (service *SymptomService) RecordReported(description string, timestamp time.Time, privacyMode bool) error {
	return service.Record(description, defaultRecordedSeverity, timestamp, privacyMode)
}

func (service *SymptomService) Recent(limit int) ([]models.Symptom, error) {
	return service.stores.Store().ListRecentSymptoms(limit)
}

// Analyze maps a symptom description onto the canned keyword catalog.
func (service *SymptomService) Analyze(symptom string) SymptomAnalysis {
	lowered := strings.ToLower(symptom)

	switch {
	case strings.Contains(lowered, "dizz"):
		return SymptomAnalysis{
			Analysis: "Dizziness can be a side effect of your blood pressure medication (Lisinopril). It could also be related to your low potassium levels. I recommend sitting down and drinking water.",
			Severity: SeverityMedium,
			Tags:     []string{"dizziness", "medication-side-effect", "blood-pressure"},
			FollowUp: []FollowUpQuestion{
				{Text: "When did the dizziness start?", Options: []string{"Just now", "This morning", "Yesterday", "A few days ago"}},
				{Text: "How severe is it on a scale of 1-10?", Options: []string{"1-3 (Mild)", "4-6 (Moderate)", "7-10 (Severe)"}},
			},
		}
	case strings.Contains(lowered, "headache") || strings.Contains(lowered, "head"):
		return SymptomAnalysis{
			Analysis: "Headaches can be related to blood pressure changes. Since you've had elevated BP readings, this could be connected. Monitor your blood pressure and note the time of day.",
			Severity: SeverityMedium,
			Tags:     []string{"headache", "blood-pressure"},
			FollowUp: []FollowUpQuestion{
				{Text: "Where is the headache located?", Options: []string{"Forehead", "Temples", "Back of head", "All over"}},
			},
		}
	case strings.Contains(lowered, "fatigue") || strings.Contains(lowered, "tired"):
		return SymptomAnalysis{
			Analysis: "Fatigue could be related to your diabetes management or low potassium. Make sure you're eating regularly and staying hydrated.",
			Severity: SeverityLow,
			Tags:     []string{"fatigue", "diabetes", "potassium"},
			FollowUp: []FollowUpQuestion{},
		}
	default:
		return SymptomAnalysis{
			Analysis: fmt.Sprintf("I've logged your symptom: %q. I'll track this and look for patterns. If it persists or worsens, please contact your doctor.", symptom),
			Severity: SeverityLow,
			Tags:     []string{"general"},
			FollowUp: []FollowUpQuestion{},
		}
	}
}

// DetectPatterns scans the trailing week of symptoms for recurring
// dizziness reports.
func (service *SymptomService) DetectPatterns() ([]SymptomPattern, error) {
	cutoff := time.Now().In(service.location).AddDate(0, 0, -patternWindowDays)
	symptoms, err := service.stores.Store().ListSymptomsSince(cutoff)
	if err != nil {
		return nil, err
	}

	dizzinessCount := 0
	for _, symptom := range symptoms {
		if strings.Contains(strings.ToLower(symptom.Description), "dizz") {
			dizzinessCount++
		}
	}

	patterns := make([]SymptomPattern, 0)
	if dizzinessCount >= patternDizzinessMin {
		patterns = append(patterns, SymptomPattern{
			Message: fmt.Sprintf("You've reported dizziness %d times this week. This is unusual for you and may be related to your blood pressure medication or low potassium levels. Consider contacting your doctor.", dizzinessCount),
		})
	}
	return patterns, nil
}

// FollowUpAcknowledgement produces the scripted follow-up reply.
func (service *SymptomService) FollowUpAcknowledgement(answer string) string {
	return fmt.Sprintf("Thank you for that information. I've updated your symptom log with: %s. I'll continue monitoring for patterns.", answer)
}
