package repository

import (
	"errors"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"

	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepo(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

// GetBedByID retrieves a bed by ID
func (r *BedRepository) GetBedByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("bed not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch bed", err)
	}
	return &bed, nil
}

// GetBedsByWardID retrieves all beds in a ward ordered by bed number
func (r *BedRepository) GetBedsByWardID(wardID uint) ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Where("ward_id = ?", wardID).
		Order("bed_number ASC").
		Find(&beds).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list beds", err)
	}
	return beds, nil
}

// GetBedByNumberAndWard retrieves a bed by its number within a ward
func (r *BedRepository) GetBedByNumberAndWard(bedNumber string, wardID uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Where("bed_number = ? AND ward_id = ?", bedNumber, wardID).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("bed not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch bed", err)
	}
	return &bed, nil
}

// CountBedsByWardID counts all beds in a ward, used for capacity checks
func (r *BedRepository) CountBedsByWardID(wardID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bed{}).Where("ward_id = ?", wardID).Count(&count).Error
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count beds", err)
	}
	return count, nil
}

// CreateBed creates a new bed
func (r *BedRepository) CreateBed(bed *models.Bed) error {
	if err := r.db.Create(bed).Error; err != nil {
		return apperrors.NewInternalError("failed to create bed", err)
	}
	return nil
}

// UpdateBedStatus transitions a bed from one status to another with a
// conditional update. The WHERE clause on the current status makes the
// write a compare-and-set: a concurrent admission or discharge that moved
// the bed first causes RowsAffected 0 rather than a lost update.
func (r *BedRepository) UpdateBedStatus(id uint, from, to models.BedStatus) error {
	res := r.db.Model(&models.Bed{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return apperrors.NewInternalError("failed to update bed status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewConflictError("bed status changed concurrently")
	}
	return nil
}
