package services

import (
	"strings"
	"testing"
	"time"

	"github.com/chronicare/copilot/internal/store"
)

func newSymptomServiceWithMemoryStore(t *testing.T) (*SymptomService, *store.MemoryStore) {
	t.Helper()

	records := store.NewMemoryStore(time.UTC)
	selector := store.NewSelector(
		func() (store.Store, error) { return records, nil },
		func() store.Store { return records },
	)
	return NewSymptomService(selector, time.UTC), records
}

func TestRecordSuppressedUnderPrivacyMode(t *testing.T) {
	t.Parallel()

	service, records := newSymptomServiceWithMemoryStore(t)

	if err := service.Record("Dizziness", 5, time.Time{}, true); err != nil {
		t.Fatalf("privacy record: %v", err)
	}
	symptoms, err := records.ListRecentSymptoms(10)
	if err != nil {
		t.Fatalf("list symptoms: %v", err)
	}
	if len(symptoms) != 0 {
		t.Fatalf("expected no rows under privacy mode, got %d", len(symptoms))
	}

	if err := service.Record("Dizziness", 5, time.Time{}, false); err != nil {
		t.Fatalf("record: %v", err)
	}
	symptoms, err = records.ListRecentSymptoms(10)
	if err != nil {
		t.Fatalf("list symptoms: %v", err)
	}
	if len(symptoms) != 1 {
		t.Fatalf("expected 1 row with privacy off, got %d", len(symptoms))
	}
}

func TestAnalyzeMatchesKeywordCatalog(t *testing.T) {
	t.Parallel()

	service, _ := newSymptomServiceWithMemoryStore(t)

	tests := []struct {
		name         string
		symptom      string
		wantSeverity string
		wantTag      string
		wantFollowUp bool
	}{
		{
			name:         "dizziness",
			symptom:      "I feel dizzy this morning",
			wantSeverity: SeverityMedium,
			wantTag:      "dizziness",
			wantFollowUp: true,
		},
		{
			name:         "headache",
			symptom:      "bad headache behind my eyes",
			wantSeverity: SeverityMedium,
			wantTag:      "headache",
			wantFollowUp: true,
		},
		{
			name:         "fatigue",
			symptom:      "so tired all day",
			wantSeverity: SeverityLow,
			wantTag:      "fatigue",
			wantFollowUp: false,
		},
		{
			name:         "unrecognized",
			symptom:      "itchy elbow",
			wantSeverity: SeverityLow,
			wantTag:      "general",
			wantFollowUp: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := service.Analyze(tt.symptom)
			if analysis.Severity != tt.wantSeverity {
				t.Fatalf("severity = %q, want %q", analysis.Severity, tt.wantSeverity)
			}
			if len(analysis.Tags) == 0 || analysis.Tags[0] != tt.wantTag {
				t.Fatalf("tags = %v, want first %q", analysis.Tags, tt.wantTag)
			}
			if (len(analysis.FollowUp) > 0) != tt.wantFollowUp {
				t.Fatalf("follow-up presence = %v, want %v", len(analysis.FollowUp) > 0, tt.wantFollowUp)
			}
			if analysis.Analysis == "" {
				t.Fatal("expected non-empty analysis text")
			}
		})
	}
}

func TestAnalyzeEchoesUnrecognizedSymptom(t *testing.T) {
	t.Parallel()

	service, _ := newSymptomServiceWithMemoryStore(t)
	analysis := service.Analyze("itchy elbow")
	if !strings.Contains(analysis.Analysis, "itchy elbow") {
		t.Fatalf("expected echo of the symptom, got %q", analysis.Analysis)
	}
}

func TestDetectPatternsFlagsRecurringDizziness(t *testing.T) {
	t.Parallel()

	service, records := newSymptomServiceWithMemoryStore(t)

	now := time.Now().UTC()
	for index := 0; index < 3; index++ {
		if _, err := records.InsertSymptom("Dizziness", 5, now.Add(-time.Duration(index)*time.Hour)); err != nil {
			t.Fatalf("insert symptom: %v", err)
		}
	}
	if _, err := records.InsertSymptom("Headache", 4, now); err != nil {
		t.Fatalf("insert symptom: %v", err)
	}

	patterns, err := service.DetectPatterns()
	if err != nil {
		t.Fatalf("detect patterns: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if !strings.Contains(patterns[0].Message, "dizziness 3 times") {
		t.Fatalf("unexpected pattern message: %q", patterns[0].Message)
	}
}

func TestDetectPatternsIgnoresSparseReports(t *testing.T) {
	t.Parallel()

	service, records := newSymptomServiceWithMemoryStore(t)
	if _, err := records.InsertSymptom("Dizziness", 5, time.Now().UTC()); err != nil {
		t.Fatalf("insert symptom: %v", err)
	}

	patterns, err := service.DetectPatterns()
	if err != nil {
		t.Fatalf("detect patterns: %v", err)
	}
	if len(patterns) != 0 {
		t.Fatalf("expected no patterns, got %d", len(patterns))
	}
}
