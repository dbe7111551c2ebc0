package store

import (
	"path/filepath"
	"testing"
	"time"
)

// Both drivers must produce observably identical results for the same
// scripted operation sequence.
func TestDriverParity(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "copilot-parity.db")
	durable, err := OpenSQLite(databasePath, time.UTC)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = durable.Close()
	})

	drivers := map[string]Store{
		"durable":   durable,
		"ephemeral": NewMemoryStore(time.UTC),
	}

	type observation struct {
		medications []string
		statuses    []string
		symptoms    []string
	}

	observations := make(map[string]observation, len(drivers))
	for name, records := range drivers {
		lisinoprilID, err := records.InsertMedication("Lisinopril", "10mg", "Daily", "08:00")
		if err != nil {
			t.Fatalf("%s: insert medication: %v", name, err)
		}
		metforminID, err := records.InsertMedication("Metformin", "500mg", "Twice Daily", "08:00")
		if err != nil {
			t.Fatalf("%s: insert medication: %v", name, err)
		}

		if _, err := records.InsertAdherenceLog(lisinoprilID, "taken"); err != nil {
			t.Fatalf("%s: insert adherence log: %v", name, err)
		}
		skippedID, err := records.InsertAdherenceLog(metforminID, "taken")
		if err != nil {
			t.Fatalf("%s: insert adherence log: %v", name, err)
		}
		if _, err := records.UpdateAdherenceLogStatus(skippedID, "skipped"); err != nil {
			t.Fatalf("%s: update adherence log: %v", name, err)
		}
		if _, err := records.DeleteMedication(metforminID); err != nil {
			t.Fatalf("%s: delete medication: %v", name, err)
		}

		base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		for index, description := range []string{"Headache", "Dizziness"} {
			if _, err := records.InsertSymptom(description, 5, base.AddDate(0, 0, index)); err != nil {
				t.Fatalf("%s: insert symptom: %v", name, err)
			}
		}

		medications, err := records.ListMedications()
		if err != nil {
			t.Fatalf("%s: list medications: %v", name, err)
		}
		logs, err := records.ListAdherenceLogsForDay(time.Now().UTC())
		if err != nil {
			t.Fatalf("%s: list adherence logs: %v", name, err)
		}
		symptoms, err := records.ListRecentSymptoms(10)
		if err != nil {
			t.Fatalf("%s: list recent symptoms: %v", name, err)
		}

		result := observation{}
		for _, medication := range medications {
			result.medications = append(result.medications, medication.Name)
		}
		for _, entry := range logs {
			result.statuses = append(result.statuses, entry.Status)
		}
		for _, symptom := range symptoms {
			result.symptoms = append(result.symptoms, symptom.Description)
		}
		observations[name] = result
	}

	durableResult := observations["durable"]
	ephemeralResult := observations["ephemeral"]

	assertSameStrings(t, "medications", durableResult.medications, ephemeralResult.medications)
	assertSameStrings(t, "adherence statuses", durableResult.statuses, ephemeralResult.statuses)
	assertSameStrings(t, "symptoms", durableResult.symptoms, ephemeralResult.symptoms)
}

func assertSameStrings(t *testing.T, label string, durable []string, ephemeral []string) {
	t.Helper()

	if len(durable) != len(ephemeral) {
		t.Fatalf("%s length mismatch: durable=%v ephemeral=%v", label, durable, ephemeral)
	}
	for index := range durable {
		if durable[index] != ephemeral[index] {
			t.Fatalf("%s mismatch at %d: durable=%v ephemeral=%v", label, index, durable, ephemeral)
		}
	}
}
