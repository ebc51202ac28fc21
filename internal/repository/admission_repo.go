package repository

import (
	"errors"
	"time"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"

	"gorm.io/gorm"
)

type AdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// Admit occupies a bed and creates the admission row in one transaction.
// The bed write is a compare-and-set on status available, so two concurrent
// admits against the same bed can never both succeed: the loser sees
// RowsAffected 0 and the whole transaction rolls back with a conflict.
func (r *AdmissionRepository) Admit(adm *models.Admission) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Bed{}).
			Where("id = ? AND status = ?", adm.BedID, models.BedAvailable).
			Update("status", models.BedOccupied)
		if res.Error != nil {
			return apperrors.NewInternalError("failed to occupy bed", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("bed is not available")
		}
		if err := tx.Create(adm).Error; err != nil {
			return apperrors.NewInternalError("failed to create admission", err)
		}
		return nil
	})
	return err
}

// Discharge closes an open admission and frees its bed in one transaction.
// The conditional update on discharged_at IS NULL makes a second discharge
// of the same admission fail with a conflict instead of silently rewriting
// the discharge metadata.
func (r *AdmissionRepository) Discharge(id uint, dischargeType models.DischargeType, notes string, dischargedBy uint, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var adm models.Admission
		if err := tx.First(&adm, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("admission not found")
			}
			return apperrors.NewInternalError("failed to fetch admission", err)
		}

		res := tx.Model(&models.Admission{}).
			Where("id = ? AND discharged_at IS NULL", id).
			Updates(map[string]interface{}{
				"discharged_at":   at,
				"discharge_type":  dischargeType,
				"discharge_notes": notes,
				"discharged_by":   dischargedBy,
			})
		if res.Error != nil {
			return apperrors.NewInternalError("failed to discharge admission", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("admission already discharged")
		}

		// Bed goes straight back to available; cleaning is a manual
		// housekeeping transition afterwards.
		bedRes := tx.Model(&models.Bed{}).
			Where("id = ? AND status = ?", adm.BedID, models.BedOccupied).
			Update("status", models.BedAvailable)
		if bedRes.Error != nil {
			return apperrors.NewInternalError("failed to free bed", bedRes.Error)
		}
		if bedRes.RowsAffected == 0 {
			return apperrors.NewInternalError("bed was not occupied for open admission", nil)
		}
		return nil
	})
}

// GetAdmissionByID retrieves an admission with its patient, ward and bed
func (r *AdmissionRepository) GetAdmissionByID(id uint) (*models.Admission, error) {
	var adm models.Admission
	err := r.db.Preload("Patient").Preload("Ward").Preload("Bed").First(&adm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admission not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch admission", err)
	}
	return &adm, nil
}

// GetOpenAdmissionsByWardID retrieves the open admissions for a ward with
// their patients, used to label occupied beds on the ward detail view
func (r *AdmissionRepository) GetOpenAdmissionsByWardID(wardID uint) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.Where("ward_id = ? AND discharged_at IS NULL", wardID).
		Preload("Patient").
		Find(&admissions).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list open admissions", err)
	}
	return admissions, nil
}

// ListAdmissionsByPatientID retrieves a patient's admission history,
// most recent first
func (r *AdmissionRepository) ListAdmissionsByPatientID(patientID uint) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.Where("patient_id = ?", patientID).
		Preload("Ward").
		Preload("Bed").
		Order("admitted_at DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list admissions", err)
	}
	return admissions, nil
}
