package models

import "time"

// BedStatus is the lifecycle state of a bed, stored as an enum column so the
// database rejects anything outside the closed set.
type BedStatus string

const (
	BedAvailable   BedStatus = "available"
	BedOccupied    BedStatus = "occupied"
	BedCleaning    BedStatus = "cleaning"
	BedMaintenance BedStatus = "maintenance"
)

// bedTransitions lists the housekeeping transitions allowed through a direct
// status update. available->occupied and occupied->available are deliberately
// absent: occupying a bed only happens through an admission, and freeing it
// only through a discharge.
var bedTransitions = map[BedStatus][]BedStatus{
	BedAvailable:   {BedCleaning, BedMaintenance},
	BedCleaning:    {BedAvailable},
	BedMaintenance: {BedAvailable},
	BedOccupied:    {},
}

// ValidBedStatus reports whether s is one of the known bed states
func ValidBedStatus(s BedStatus) bool {
	switch s {
	case BedAvailable, BedOccupied, BedCleaning, BedMaintenance:
		return true
	}
	return false
}

// CanTransition reports whether a direct status update from one state to
// another is allowed by the housekeeping transition table
func CanTransition(from, to BedStatus) bool {
	for _, next := range bedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Bed represents the smallest occupiable unit within a ward
type Bed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WardID    uint      `gorm:"not null;index;uniqueIndex:idx_ward_bed_number" json:"ward_id"`
	BedNumber string    `gorm:"size:50;not null;uniqueIndex:idx_ward_bed_number" json:"bed_number"`
	Type      string    `gorm:"size:50;default:'standard'" json:"type"`
	Status    BedStatus `gorm:"type:enum('available','occupied','cleaning','maintenance');default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Ward Ward `gorm:"foreignKey:WardID" json:"ward,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}

// BedWithOccupant pairs a bed with its open admission for ward detail views.
// Occupant is nil unless the bed status is occupied.
type BedWithOccupant struct {
	Bed
	Occupant *OccupantInfo `json:"occupant,omitempty"`
}

// OccupantInfo is the slice of an open admission shown on a bed card
type OccupantInfo struct {
	AdmissionID uint      `json:"admission_id"`
	PatientID   uint      `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	MRN         string    `json:"mrn"`
	Diagnosis   string    `json:"diagnosis"`
	AdmittedAt  time.Time `json:"admitted_at"`
}
