package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chronicare/copilot/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteStore is the durable driver: a disk-backed SQLite database in WAL
// mode so readers are not blocked during writes. The schema is created
// with create-if-absent statements on every open.
type SQLiteStore struct {
	database *gorm.DB
	location *time.Location
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS medications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  dosage TEXT,
  frequency TEXT,
  time TEXT
);`,
	`CREATE TABLE IF NOT EXISTS adherence_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  med_id INTEGER NOT NULL,
  taken_at DATETIME NOT NULL,
  status TEXT NOT NULL DEFAULT 'taken'
);`,
	`CREATE TABLE IF NOT EXISTS symptoms (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  description TEXT,
  severity INTEGER,
  timestamp DATETIME NOT NULL
);`,
}

// OpenSQLite opens (or creates) the database at dbPath. Any failure is
// reported as ErrStorageUnavailable so the selector can fall back.
func OpenSQLite(dbPath string, location *time.Location) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %v", ErrStorageUnavailable, err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrStorageUnavailable, err)
	}

	if err := database.Exec(`PRAGMA journal_mode = WAL`).Error; err != nil {
		return nil, fmt.Errorf("%w: enable WAL: %v", ErrStorageUnavailable, err)
	}

	for _, statement := range schemaStatements {
		if err := database.Exec(statement).Error; err != nil {
			return nil, fmt.Errorf("%w: create schema: %v", ErrStorageUnavailable, err)
		}
	}

	if location == nil {
		location = time.UTC
	}
	return &SQLiteStore{database: database, location: location}, nil
}

// Close releases the underlying database handle.
func (store *SQLiteStore) Close() error {
	sqlDB, err := store.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (store *SQLiteStore) InsertMedication(name string, dosage string, frequency string, timeOfDay string) (uint, error) {
	medication := models.Medication{
		Name:      name,
		Dosage:    dosage,
		Frequency: frequency,
		TimeOfDay: timeOfDay,
	}
	if err := store.database.Create(&medication).Error; err != nil {
		return 0, err
	}
	return medication.ID, nil
}

func (store *SQLiteStore) DeleteMedication(id uint) (int64, error) {
	result := store.database.Delete(&models.Medication{}, id)
	return result.RowsAffected, result.Error
}

func (store *SQLiteStore) ListMedications() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := store.database.Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (store *SQLiteStore) FindAdherenceLog(medicationID uint, day time.Time) (models.AdherenceLog, bool, error) {
	dayStart, dayEnd := DayBounds(day, store.location)
	entry := models.AdherenceLog{}
	result := store.database.
		Where("med_id = ? AND taken_at >= ? AND taken_at < ?", medicationID, dayStart, dayEnd).
		Order("taken_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.AdherenceLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AdherenceLog{}, false, nil
	}
	return entry, true, nil
}

func (store *SQLiteStore) ListAdherenceLogsForDay(day time.Time) ([]models.AdherenceLog, error) {
	dayStart, dayEnd := DayBounds(day, store.location)
	entries := make([]models.AdherenceLog, 0)
	if err := store.database.
		Where("taken_at >= ? AND taken_at < ?", dayStart, dayEnd).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (store *SQLiteStore) InsertAdherenceLog(medicationID uint, status string) (uint, error) {
	entry := models.AdherenceLog{
		MedicationID: medicationID,
		Status:       status,
		TakenAt:      time.Now().In(store.location),
	}
	if err := store.database.Create(&entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (store *SQLiteStore) UpdateAdherenceLogStatus(id uint, status string) (int64, error) {
	result := store.database.Model(&models.AdherenceLog{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":   status,
			"taken_at": time.Now().In(store.location),
		})
	return result.RowsAffected, result.Error
}

func (store *SQLiteStore) DeleteAdherenceLog(id uint) (int64, error) {
	result := store.database.Delete(&models.AdherenceLog{}, id)
	return result.RowsAffected, result.Error
}

func (store *SQLiteStore) InsertSymptom(description string, severity int, timestamp time.Time) (uint, error) {
	if timestamp.IsZero() {
		timestamp = time.Now().In(store.location)
	}
	symptom := models.Symptom{
		Description: description,
		Severity:    severity,
		Timestamp:   timestamp,
	}
	if err := store.database.Create(&symptom).Error; err != nil {
		return 0, err
	}
	return symptom.ID, nil
}

func (store *SQLiteStore) ListRecentSymptoms(limit int) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := store.database.
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (store *SQLiteStore) ListSymptomsSince(cutoffDay time.Time) ([]models.Symptom, error) {
	cutoffStart := DateAtLocation(cutoffDay, store.location)
	symptoms := make([]models.Symptom, 0)
	if err := store.database.
		Where("timestamp >= ?", cutoffStart).
		Order("timestamp ASC, id ASC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}
