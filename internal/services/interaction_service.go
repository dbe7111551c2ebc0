package services

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDrugList = errors.New("invalid drug list")

const (
	InteractionSeverityHigh   = "High"
	InteractionSeverityMedium = "Medium"
)

type Interaction struct {
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type InteractionMatch struct {
	Interaction
	Pair []string `json:"pair"`
}

// The lookup table is deliberately fixed; this is not clinical decision
// support.
var knownInteractions = map[string]Interaction{
	"aspirin-warfarin": {
		Severity:       InteractionSeverityHigh,
		Description:    "Increases the risk of bleeding. Aspirin has antiplatelet effects which can amplify the anticoagulant effect of Warfarin.",
		Recommendation: "Avoid concurrent use unless monitored closely by a physician.",
	},
	"lisinopril-potassium": {
		Severity:       InteractionSeverityMedium,
		Description:    "May cause hyperkalemia (high blood potassium levels).",
		Recommendation: "Monitor potassium levels regularly.",
	},
	"ibuprofen-lisinopril": {
		Severity:       InteractionSeverityMedium,
		Description:    "NSAIDs may reduce the antihypertensive effect of ACE inhibitors and increase risk of renal impairment.",
		Recommendation: "Use lowest effective dose of NSAID and monitor blood pressure.",
	},
}

// FindInteraction checks every drug pair against the table, in both
// orders, and returns the first match.
func FindInteraction(drugs []string) (InteractionMatch, bool) {
	normalized := make([]string, 0, len(drugs))
	for _, drug := range drugs {
		cleaned := strings.ToLower(strings.TrimSpace(drug))
		if cleaned != "" {
			normalized = append(normalized, cleaned)
		}
	}

	for i := 0; i < len(normalized); i++ {
		for j := i + 1; j < len(normalized); j++ {
			pair := []string{normalized[i], normalized[j]}
			if interaction, ok := knownInteractions[fmt.Sprintf("%s-%s", normalized[i], normalized[j])]; ok {
				return InteractionMatch{Interaction: interaction, Pair: pair}, true
			}
			if interaction, ok := knownInteractions[fmt.Sprintf("%s-%s", normalized[j], normalized[i])]; ok {
				return InteractionMatch{Interaction: interaction, Pair: pair}, true
			}
		}
	}
	return InteractionMatch{}, false
}
