package store

import (
	"errors"
	"time"

	"github.com/chronicare/copilot/internal/models"
)

// ErrStorageUnavailable means the durable backing engine could not be
// opened. The selector recovers from it by falling back to the ephemeral
// driver; it is never surfaced to API callers.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store is the record-store driver contract. Both drivers implement the
// same observable semantics: stable unique identifiers, insertion-order
// medication listing, at most one adherence lookup hit per day, and
// zero-count no-op deletes for unknown identifiers.
//
// Every operation may block on I/O; callers must stay backend-agnostic.
type Store interface {
	InsertMedication(name string, dosage string, frequency string, timeOfDay string) (uint, error)
	DeleteMedication(id uint) (int64, error)
	ListMedications() ([]models.Medication, error)

	FindAdherenceLog(medicationID uint, day time.Time) (models.AdherenceLog, bool, error)
	ListAdherenceLogsForDay(day time.Time) ([]models.AdherenceLog, error)
	InsertAdherenceLog(medicationID uint, status string) (uint, error)
	UpdateAdherenceLogStatus(id uint, status string) (int64, error)
	DeleteAdherenceLog(id uint) (int64, error)

	InsertSymptom(description string, severity int, timestamp time.Time) (uint, error)
	ListRecentSymptoms(limit int) ([]models.Symptom, error)
	ListSymptomsSince(cutoffDay time.Time) ([]models.Symptom, error)
}
