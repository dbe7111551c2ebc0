package models

type Medication struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	TimeOfDay string `gorm:"column:time" json:"time"`
}
