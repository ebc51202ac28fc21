package models

import "time"

// Ward represents a hospital unit grouping beds (e.g. "ICU", "Maternity")
type Ward struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Code              string    `gorm:"size:50;uniqueIndex" json:"code"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Type              string    `gorm:"type:enum('general','icu','maternity','pediatric','surgical');default:'general'" json:"type"`
	GenderRestriction string    `gorm:"type:enum('none','male','female');default:'none'" json:"gender_restriction"`
	Capacity          int       `gorm:"not null;default:0;comment:Configured maximum number of beds" json:"capacity"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Ward model
func (Ward) TableName() string {
	return "wards"
}

// WardOccupancy holds the derived bed counts for a ward.
// Counts are always computed from bed rows at read time, never stored.
type WardOccupancy struct {
	TotalBeds    int64 `json:"total_beds"`
	OccupiedBeds int64 `json:"occupied_beds"`
}

// WardSummary includes derived occupancy counts for the ward list view
type WardSummary struct {
	Ward
	TotalBeds    int64 `json:"total_beds"`
	OccupiedBeds int64 `json:"occupied_beds"`
}

// WardDetail includes the ward's beds, each with its current occupant if any
type WardDetail struct {
	Ward
	TotalBeds    int64             `json:"total_beds"`
	OccupiedBeds int64             `json:"occupied_beds"`
	Beds         []BedWithOccupant `json:"beds"`
}
