package repository

import (
	"errors"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetPatientByID retrieves an active patient by ID
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("patient not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch patient", err)
	}
	return &patient, nil
}

// GetPatientByMRN retrieves an active patient by medical record number
func (r *PatientRepository) GetPatientByMRN(mrn string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("mrn = ? AND is_active = ?", mrn, true).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("patient not found")
		}
		return nil, apperrors.NewInternalError("failed to fetch patient", err)
	}
	return &patient, nil
}

// CreatePatient creates a new patient
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	if err := r.db.Create(patient).Error; err != nil {
		return apperrors.NewInternalError("failed to create patient", err)
	}
	return nil
}

// ListPatients retrieves active patients, optionally filtered by a search
// term matched against MRN and name
func (r *PatientRepository) ListPatients(search string) ([]models.Patient, error) {
	var patients []models.Patient
	query := r.db.Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("mrn LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	err := query.Order("last_name ASC, first_name ASC").Find(&patients).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list patients", err)
	}
	return patients, nil
}
