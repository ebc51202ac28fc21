package models

import "time"

// Patient represents a person in the hospital's patient directory.
// The admission workflow only reads patient identity (name + MRN) to label
// an admission; clinical records live elsewhere.
type Patient struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MRN         string     `gorm:"size:50;not null;uniqueIndex" json:"mrn"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"size:100;not null" json:"last_name"`
	Gender      string     `gorm:"type:enum('male','female','other');default:'other'" json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Phone       string     `gorm:"size:30" json:"phone,omitempty"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
