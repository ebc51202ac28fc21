package service

import (
	"fmt"
	"strings"
	"time"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"
)

// AdmissionRepository is the admission storage the service depends on.
// Admit and Discharge are atomic: the bed write and the admission write
// happen in one transaction or not at all.
type AdmissionRepository interface {
	Admit(adm *models.Admission) error
	Discharge(id uint, dischargeType models.DischargeType, notes string, dischargedBy uint, at time.Time) error
	GetAdmissionByID(id uint) (*models.Admission, error)
	GetOpenAdmissionsByWardID(wardID uint) ([]models.Admission, error)
	ListAdmissionsByPatientID(patientID uint) ([]models.Admission, error)
}

// PatientReader resolves patient identity for admissions
type PatientReader interface {
	GetPatientByID(id uint) (*models.Patient, error)
}

// AdmitRequest carries the fields needed to admit a patient to a bed
type AdmitRequest struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	WardID    uint   `json:"ward_id" binding:"required"`
	BedID     uint   `json:"bed_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	Diagnosis string `json:"diagnosis" binding:"required"`
	Notes     string `json:"notes"`
}

type AdmissionService struct {
	admissionRepo AdmissionRepository
	bedRepo       BedRepository
	wardRepo      WardRepository
	patientRepo   PatientReader
	auditRepo     AuditLogger
	now           func() time.Time
}

func NewAdmissionService(
	admissionRepo AdmissionRepository,
	bedRepo BedRepository,
	wardRepo WardRepository,
	patientRepo PatientReader,
	auditRepo AuditLogger,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		bedRepo:       bedRepo,
		wardRepo:      wardRepo,
		patientRepo:   patientRepo,
		auditRepo:     auditRepo,
		now:           time.Now,
	}
}

// AdmitPatient admits a patient to an available bed. The acting staff
// identity comes from the verified session, never from the request body.
// If the bed is not available the admit is rejected outright; there is no
// queueing or waiting.
func (s *AdmissionService) AdmitPatient(req *AdmitRequest, userID uint) (*models.Admission, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.NewValidationError("reason is required")
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, apperrors.NewValidationError("diagnosis is required")
	}

	patient, err := s.patientRepo.GetPatientByID(req.PatientID)
	if err != nil {
		return nil, err
	}
	ward, err := s.wardRepo.GetWardByID(req.WardID)
	if err != nil {
		return nil, err
	}
	bed, err := s.bedRepo.GetBedByID(req.BedID)
	if err != nil {
		return nil, err
	}
	if bed.WardID != ward.ID {
		return nil, apperrors.NewValidationError("bed does not belong to the requested ward")
	}
	if bed.Status != models.BedAvailable {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("bed %s is %s, not available", bed.BedNumber, bed.Status))
	}

	adm := &models.Admission{
		PatientID:  patient.ID,
		WardID:     ward.ID,
		BedID:      bed.ID,
		Reason:     req.Reason,
		Diagnosis:  req.Diagnosis,
		Notes:      req.Notes,
		AdmittedBy: userID,
		AdmittedAt: s.now().UTC(),
	}

	// The repo re-checks bed availability inside the transaction, so a
	// concurrent admit that won the race surfaces here as a conflict.
	if err := s.admissionRepo.Admit(adm); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Admitted patient %s (MRN %s) to ward %s bed %s",
		patient.FullName(), patient.MRN, ward.Code, bed.BedNumber)
	_ = s.auditRepo.CreateAuditLog(&userID, "patient_admit", details)

	return adm, nil
}

// DischargePatient closes an open admission and frees its bed.
// Discharge is not idempotent: a second call fails with a conflict.
func (s *AdmissionService) DischargePatient(admissionID uint, dischargeType models.DischargeType, notes string, userID uint) (*models.Admission, error) {
	if !models.ValidDischargeType(dischargeType) {
		return nil, apperrors.NewValidationError("unknown discharge type")
	}

	adm, err := s.admissionRepo.GetAdmissionByID(admissionID)
	if err != nil {
		return nil, err
	}
	if !adm.IsOpen() {
		return nil, apperrors.NewConflictError("admission already discharged")
	}

	if err := s.admissionRepo.Discharge(admissionID, dischargeType, notes, userID, s.now().UTC()); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Discharged admission %d (%s)", admissionID, dischargeType)
	_ = s.auditRepo.CreateAuditLog(&userID, "patient_discharge", details)

	return s.admissionRepo.GetAdmissionByID(admissionID)
}

// GetAdmission retrieves an admission with its patient, ward and bed
func (s *AdmissionService) GetAdmission(id uint) (*models.Admission, error) {
	return s.admissionRepo.GetAdmissionByID(id)
}

// ListPatientAdmissions retrieves a patient's admission history
func (s *AdmissionService) ListPatientAdmissions(patientID uint) ([]models.Admission, error) {
	if _, err := s.patientRepo.GetPatientByID(patientID); err != nil {
		return nil, err
	}
	return s.admissionRepo.ListAdmissionsByPatientID(patientID)
}
