package models

import "time"

// Symptom history is append-only: rows are created, never updated or
// deleted.
type Symptom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `json:"description"`
	Severity    int       `json:"severity"`
	Timestamp   time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
}
