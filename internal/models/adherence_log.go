package models

import "time"

const (
	StatusTaken   = "taken"
	StatusSkipped = "skipped"
	StatusUndo    = "undo"
)

// AdherenceLog is one observation of medication-taking status for a
// calendar day. The medication reference is not ownership: the medication
// may be deleted while its logs remain.
type AdherenceLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MedicationID uint      `gorm:"column:med_id;not null;index" json:"med_id"`
	TakenAt      time.Time `gorm:"column:taken_at;not null" json:"taken_at"`
	Status       string    `gorm:"not null;default:taken" json:"status"`
}
