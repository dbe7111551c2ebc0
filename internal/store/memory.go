package store

import (
	"sort"
	"sync"
	"time"

	"github.com/chronicare/copilot/internal/models"
)

// MemoryStore is the ephemeral driver: process-memory slices that vanish
// on restart. It mirrors the durable driver's observable semantics and
// serializes every operation behind one mutex, since it has no engine
// below it to provide isolation.
type MemoryStore struct {
	mu       sync.Mutex
	location *time.Location

	medications   []models.Medication
	adherenceLogs []models.AdherenceLog
	symptoms      []models.Symptom

	nextMedicationID   uint
	nextAdherenceLogID uint
	nextSymptomID      uint
}

func NewMemoryStore(location *time.Location) *MemoryStore {
	if location == nil {
		location = time.UTC
	}
	return &MemoryStore{
		location:           location,
		medications:        make([]models.Medication, 0),
		adherenceLogs:      make([]models.AdherenceLog, 0),
		symptoms:           make([]models.Symptom, 0),
		nextMedicationID:   1,
		nextAdherenceLogID: 1,
		nextSymptomID:      1,
	}
}

func (store *MemoryStore) InsertMedication(name string, dosage string, frequency string, timeOfDay string) (uint, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	medication := models.Medication{
		ID:        store.nextMedicationID,
		Name:      name,
		Dosage:    dosage,
		Frequency: frequency,
		TimeOfDay: timeOfDay,
	}
	store.nextMedicationID++
	store.medications = append(store.medications, medication)
	return medication.ID, nil
}

func (store *MemoryStore) DeleteMedication(id uint) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	kept := make([]models.Medication, 0, len(store.medications))
	var removed int64
	for _, medication := range store.medications {
		if medication.ID == id {
			removed++
			continue
		}
		kept = append(kept, medication)
	}
	store.medications = kept
	return removed, nil
}

func (store *MemoryStore) ListMedications() ([]models.Medication, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	medications := make([]models.Medication, len(store.medications))
	copy(medications, store.medications)
	return medications, nil
}

func (store *MemoryStore) FindAdherenceLog(medicationID uint, day time.Time) (models.AdherenceLog, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	dayKey := DayKey(day, store.location)
	for index := len(store.adherenceLogs) - 1; index >= 0; index-- {
		entry := store.adherenceLogs[index]
		if entry.MedicationID == medicationID && DayKey(entry.TakenAt, store.location) == dayKey {
			return entry, true, nil
		}
	}
	return models.AdherenceLog{}, false, nil
}

func (store *MemoryStore) ListAdherenceLogsForDay(day time.Time) ([]models.AdherenceLog, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	dayKey := DayKey(day, store.location)
	entries := make([]models.AdherenceLog, 0)
	for _, entry := range store.adherenceLogs {
		if DayKey(entry.TakenAt, store.location) == dayKey {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (store *MemoryStore) InsertAdherenceLog(medicationID uint, status string) (uint, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry := models.AdherenceLog{
		ID:           store.nextAdherenceLogID,
		MedicationID: medicationID,
		Status:       status,
		TakenAt:      time.Now().In(store.location),
	}
	store.nextAdherenceLogID++
	store.adherenceLogs = append(store.adherenceLogs, entry)
	return entry.ID, nil
}

func (store *MemoryStore) UpdateAdherenceLogStatus(id uint, status string) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for index := range store.adherenceLogs {
		if store.adherenceLogs[index].ID == id {
			store.adherenceLogs[index].Status = status
			store.adherenceLogs[index].TakenAt = time.Now().In(store.location)
			return 1, nil
		}
	}
	return 0, nil
}

func (store *MemoryStore) DeleteAdherenceLog(id uint) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	kept := make([]models.AdherenceLog, 0, len(store.adherenceLogs))
	var removed int64
	for _, entry := range store.adherenceLogs {
		if entry.ID == id {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	store.adherenceLogs = kept
	return removed, nil
}

func (store *MemoryStore) InsertSymptom(description string, severity int, timestamp time.Time) (uint, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if timestamp.IsZero() {
		timestamp = time.Now().In(store.location)
	}
	symptom := models.Symptom{
		ID:          store.nextSymptomID,
		Description: description,
		Severity:    severity,
		Timestamp:   timestamp,
	}
	store.nextSymptomID++
	store.symptoms = append(store.symptoms, symptom)
	return symptom.ID, nil
}

func (store *MemoryStore) ListRecentSymptoms(limit int) ([]models.Symptom, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	sorted := make([]models.Symptom, len(store.symptoms))
	copy(sorted, store.symptoms)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (store *MemoryStore) ListSymptomsSince(cutoffDay time.Time) ([]models.Symptom, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	cutoffStart := DateAtLocation(cutoffDay, store.location)
	symptoms := make([]models.Symptom, 0)
	for _, symptom := range store.symptoms {
		if !symptom.Timestamp.Before(cutoffStart) {
			symptoms = append(symptoms, symptom)
		}
	}
	return symptoms, nil
}
