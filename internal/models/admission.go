package models

import "time"

// DischargeType classifies how an admission ended
type DischargeType string

const (
	DischargeNormal      DischargeType = "discharged"
	DischargeTransferred DischargeType = "transferred"
	DischargeDeceased    DischargeType = "deceased"
	DischargeAMA         DischargeType = "ama" // against medical advice
)

// ValidDischargeType reports whether t is one of the known discharge types
func ValidDischargeType(t DischargeType) bool {
	switch t {
	case DischargeNormal, DischargeTransferred, DischargeDeceased, DischargeAMA:
		return true
	}
	return false
}

// Admission records a patient occupying a bed over a time interval.
// Rows are never physically deleted; a discharge only fills in the
// discharge fields. DischargedAt is null while the admission is open.
type Admission struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PatientID      uint           `gorm:"not null;index" json:"patient_id"`
	WardID         uint           `gorm:"not null;index" json:"ward_id"`
	BedID          uint           `gorm:"not null;index" json:"bed_id"`
	Reason         string         `gorm:"size:255;not null" json:"reason"`
	Diagnosis      string         `gorm:"size:255;not null" json:"diagnosis"`
	Notes          string         `gorm:"type:text" json:"notes,omitempty"`
	AdmittedBy     uint           `gorm:"not null" json:"admitted_by"`
	AdmittedAt     time.Time      `gorm:"not null" json:"admitted_at"`
	DischargedAt   *time.Time     `gorm:"index" json:"discharged_at"`
	DischargeType  *DischargeType `gorm:"type:enum('discharged','transferred','deceased','ama')" json:"discharge_type"`
	DischargeNotes string         `gorm:"type:text" json:"discharge_notes,omitempty"`
	DischargedBy   *uint          `json:"discharged_by"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Ward    Ward    `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	Bed     Bed     `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}

// IsOpen reports whether the admission has not been discharged yet
func (a *Admission) IsOpen() bool {
	return a.DischargedAt == nil
}
