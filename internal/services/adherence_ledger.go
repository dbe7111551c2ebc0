package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chronicare/copilot/internal/models"
	"github.com/chronicare/copilot/internal/store"
)

var (
	ErrAdherenceLookupFailed = errors.New("adherence lookup failed")
	ErrAdherenceWriteFailed  = errors.New("adherence write failed")
)

const (
	DoseLogged  = "logged"
	DoseUpdated = "updated"
	DoseUndone  = "undo"
)

// DoseResult is the response shape of a log-dose command. PrivacyMode
// marks results that were synthesized without touching storage.
type DoseResult struct {
	ID           uint   `json:"id,omitempty"`
	Status       string `json:"status"`
	MedicationID uint   `json:"med_id"`
	PrivacyMode  bool   `json:"privacy_mode,omitempty"`
}

// AdherenceLedger maps log-dose commands onto store operations while
// enforcing at most one adherence log per medication per calendar day.
type AdherenceLedger struct {
	stores   *store.Selector
	location *time.Location

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewAdherenceLedger(stores *store.Selector, location *time.Location) *AdherenceLedger {
	if location == nil {
		location = time.UTC
	}
	return &AdherenceLedger{
		stores:   stores,
		location: location,
		locks:    make(map[uint]*sync.Mutex),
	}
}

// LogDose records one observation for a medication on the current server
// day. Repeated calls for the same day toggle the single canonical log:
// first call inserts, later calls overwrite the status, "undo" deletes.
//
// With the privacy flag set, no store operation runs at all and the
// result echoes the caller's intent instead.
func (ledger *AdherenceLedger) LogDose(medicationID uint, desiredStatus string, privacyMode bool) (DoseResult, error) {
	status := strings.TrimSpace(desiredStatus)
	if status == "" {
		status = models.StatusTaken
	}

	if privacyMode {
		synthesized := DoseLogged
		if status == models.StatusUndo {
			synthesized = DoseUndone
		}
		return DoseResult{
			Status:       synthesized,
			MedicationID: medicationID,
			PrivacyMode:  true,
		}, nil
	}

	// Day boundary is computed here from the server clock, never taken
	// from the client, so the day key cannot be forged.
	now := time.Now().In(ledger.location)

	// Serializes lookup-then-mutate for one medication, which covers the
	// (medication, day) pair; without this two concurrent requests could
	// both miss the lookup and insert twice.
	lock := ledger.medicationLock(medicationID)
	lock.Lock()
	defer lock.Unlock()

	records := ledger.stores.Store()
	existing, found, err := records.FindAdherenceLog(medicationID, now)
	if err != nil {
		return DoseResult{}, fmt.Errorf("%w: %v", ErrAdherenceLookupFailed, err)
	}

	if !found {
		id, err := records.InsertAdherenceLog(medicationID, status)
		if err != nil {
			return DoseResult{}, fmt.Errorf("%w: %v", ErrAdherenceWriteFailed, err)
		}
		return DoseResult{ID: id, Status: DoseLogged, MedicationID: medicationID}, nil
	}

	if status == models.StatusUndo {
		if _, err := records.DeleteAdherenceLog(existing.ID); err != nil {
			return DoseResult{}, fmt.Errorf("%w: %v", ErrAdherenceWriteFailed, err)
		}
		return DoseResult{Status: DoseUndone, MedicationID: medicationID}, nil
	}

	if _, err := records.UpdateAdherenceLogStatus(existing.ID, status); err != nil {
		return DoseResult{}, fmt.Errorf("%w: %v", ErrAdherenceWriteFailed, err)
	}
	return DoseResult{ID: existing.ID, Status: DoseUpdated, MedicationID: medicationID}, nil
}

// LogsForToday lists every adherence log on the current server day.
func (ledger *AdherenceLedger) LogsForToday() ([]models.AdherenceLog, error) {
	return ledger.stores.Store().ListAdherenceLogsForDay(time.Now().In(ledger.location))
}

func (ledger *AdherenceLedger) medicationLock(medicationID uint) *sync.Mutex {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	lock, ok := ledger.locks[medicationID]
	if !ok {
		lock = &sync.Mutex{}
		ledger.locks[medicationID] = lock
	}
	return lock
}
