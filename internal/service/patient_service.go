package service

import (
	"fmt"
	"strings"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"

	"github.com/google/uuid"
)

// PatientRepository is the patient storage the service depends on
type PatientRepository interface {
	PatientReader
	GetPatientByMRN(mrn string) (*models.Patient, error)
	CreatePatient(patient *models.Patient) error
	ListPatients(search string) ([]models.Patient, error)
}

type PatientService struct {
	patientRepo PatientRepository
	auditRepo   AuditLogger
}

func NewPatientService(patientRepo PatientRepository, auditRepo AuditLogger) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// generateMRN derives a human-facing medical record number from a random UUID
func generateMRN() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "MRN-" + raw[:8]
}

// CreatePatient registers a new patient and assigns an MRN
func (s *PatientService) CreatePatient(patient *models.Patient, userID uint) error {
	if strings.TrimSpace(patient.FirstName) == "" || strings.TrimSpace(patient.LastName) == "" {
		return apperrors.NewValidationError("first_name and last_name are required")
	}

	patient.MRN = generateMRN()
	patient.IsActive = true
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return err
	}

	details := fmt.Sprintf("Registered patient %s (MRN %s)", patient.FullName(), patient.MRN)
	_ = s.auditRepo.CreateAuditLog(&userID, "patient_create", details)
	return nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(id uint) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// ListPatients retrieves patients, optionally filtered by MRN or name
func (s *PatientService) ListPatients(search string) ([]models.Patient, error) {
	return s.patientRepo.ListPatients(search)
}
