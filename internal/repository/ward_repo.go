package repository

import (
	"errors"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"

	"gorm.io/gorm"
)

type WardRepository struct {
	db *gorm.DB
}

func NewWardRepo(db *gorm.DB) *WardRepository {
	return &WardRepository{db: db}
}

// GetAllWards retrieves all active wards ordered by code
func (r *WardRepository) GetAllWards() ([]models.Ward, error) {
	var wards []models.Ward
	err := r.db.Where("is_active = ?", true).
		Order("code ASC").
		Find(&wards).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list wards", err)
	}
	return wards, nil
}

// GetWardByID retrieves an active ward by ID
func (r *WardRepository) GetWardByID(id uint) (*models.Ward, error) {
	var ward models.Ward
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&ward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ward not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch ward", err)
	}
	return &ward, nil
}

// GetWardByCode retrieves an active ward by its unique code
func (r *WardRepository) GetWardByCode(code string) (*models.Ward, error) {
	var ward models.Ward
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&ward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ward not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch ward", err)
	}
	return &ward, nil
}

// CreateWard creates a new ward
func (r *WardRepository) CreateWard(ward *models.Ward) error {
	if err := r.db.Create(ward).Error; err != nil {
		return apperrors.NewInternalError("failed to create ward", err)
	}
	return nil
}

// wardOccupancyRow is the scan target for the grouped bed count query
type wardOccupancyRow struct {
	WardID       uint
	TotalBeds    int64
	OccupiedBeds int64
}

// GetOccupancy computes per-ward bed counts from the bed rows.
// occupied_beds is derived at read time; there is no stored counter to drift.
func (r *WardRepository) GetOccupancy() (map[uint]models.WardOccupancy, error) {
	var rows []wardOccupancyRow
	err := r.db.Model(&models.Bed{}).
		Select("ward_id, COUNT(*) AS total_beds, SUM(status = ?) AS occupied_beds", models.BedOccupied).
		Group("ward_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count bed occupancy", err)
	}

	occupancy := make(map[uint]models.WardOccupancy, len(rows))
	for _, row := range rows {
		occupancy[row.WardID] = models.WardOccupancy{
			TotalBeds:    row.TotalBeds,
			OccupiedBeds: row.OccupiedBeds,
		}
	}
	return occupancy, nil
}
