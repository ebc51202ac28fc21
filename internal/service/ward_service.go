package service

import (
	"fmt"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/pkg/apperrors"
)

// WardRepository is the ward storage the service depends on
type WardRepository interface {
	GetAllWards() ([]models.Ward, error)
	GetWardByID(id uint) (*models.Ward, error)
	GetWardByCode(code string) (*models.Ward, error)
	CreateWard(ward *models.Ward) error
	GetOccupancy() (map[uint]models.WardOccupancy, error)
}

// BedRepository is the bed storage the service depends on
type BedRepository interface {
	GetBedByID(id uint) (*models.Bed, error)
	GetBedsByWardID(wardID uint) ([]models.Bed, error)
	GetBedByNumberAndWard(bedNumber string, wardID uint) (*models.Bed, error)
	CountBedsByWardID(wardID uint) (int64, error)
	CreateBed(bed *models.Bed) error
	UpdateBedStatus(id uint, from, to models.BedStatus) error
}

// OpenAdmissionReader resolves the occupants of a ward's beds
type OpenAdmissionReader interface {
	GetOpenAdmissionsByWardID(wardID uint) ([]models.Admission, error)
}

// AuditLogger records staff actions for the admin dashboard
type AuditLogger interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

type WardService struct {
	wardRepo      WardRepository
	bedRepo       BedRepository
	admissionRepo OpenAdmissionReader
	auditRepo     AuditLogger
}

func NewWardService(
	wardRepo WardRepository,
	bedRepo BedRepository,
	admissionRepo OpenAdmissionReader,
	auditRepo AuditLogger,
) *WardService {
	return &WardService{
		wardRepo:      wardRepo,
		bedRepo:       bedRepo,
		admissionRepo: admissionRepo,
		auditRepo:     auditRepo,
	}
}

// ListWards returns all wards with their derived bed counts
func (s *WardService) ListWards() ([]models.WardSummary, error) {
	wards, err := s.wardRepo.GetAllWards()
	if err != nil {
		return nil, err
	}
	occupancy, err := s.wardRepo.GetOccupancy()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.WardSummary, len(wards))
	for i, ward := range wards {
		counts := occupancy[ward.ID]
		summaries[i] = models.WardSummary{
			Ward:         ward,
			TotalBeds:    counts.TotalBeds,
			OccupiedBeds: counts.OccupiedBeds,
		}
	}
	return summaries, nil
}

// GetWardDetail returns a ward with its beds, occupied beds carrying the
// open admission's patient info
func (s *WardService) GetWardDetail(wardID uint) (*models.WardDetail, error) {
	ward, err := s.wardRepo.GetWardByID(wardID)
	if err != nil {
		return nil, err
	}

	beds, err := s.bedRepo.GetBedsByWardID(wardID)
	if err != nil {
		return nil, err
	}

	open, err := s.admissionRepo.GetOpenAdmissionsByWardID(wardID)
	if err != nil {
		return nil, err
	}
	occupants := make(map[uint]*models.OccupantInfo, len(open))
	for i := range open {
		adm := &open[i]
		occupants[adm.BedID] = &models.OccupantInfo{
			AdmissionID: adm.ID,
			PatientID:   adm.PatientID,
			PatientName: adm.Patient.FullName(),
			MRN:         adm.Patient.MRN,
			Diagnosis:   adm.Diagnosis,
			AdmittedAt:  adm.AdmittedAt,
		}
	}

	detail := &models.WardDetail{
		Ward: *ward,
		Beds: make([]models.BedWithOccupant, len(beds)),
	}
	for i, bed := range beds {
		detail.TotalBeds++
		entry := models.BedWithOccupant{Bed: bed}
		if bed.Status == models.BedOccupied {
			detail.OccupiedBeds++
			entry.Occupant = occupants[bed.ID]
		}
		detail.Beds[i] = entry
	}
	return detail, nil
}

// CreateWard creates a new ward (admin only)
func (s *WardService) CreateWard(ward *models.Ward, userID uint) error {
	if ward.Capacity < 0 {
		return apperrors.NewValidationError("capacity must not be negative")
	}
	if _, err := s.wardRepo.GetWardByCode(ward.Code); err == nil {
		return apperrors.NewConflictError("ward code already in use")
	} else if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return err
	}

	if err := s.wardRepo.CreateWard(ward); err != nil {
		return err
	}

	details := fmt.Sprintf("Created ward %s (code: %s, capacity: %d)", ward.Name, ward.Code, ward.Capacity)
	_ = s.auditRepo.CreateAuditLog(&userID, "ward_create", details)
	return nil
}

// CreateBed adds a bed to a ward (admin only). New beds start available.
func (s *WardService) CreateBed(bed *models.Bed, userID uint) error {
	ward, err := s.wardRepo.GetWardByID(bed.WardID)
	if err != nil {
		return err
	}

	if _, err := s.bedRepo.GetBedByNumberAndWard(bed.BedNumber, bed.WardID); err == nil {
		return apperrors.NewConflictError("bed number already exists in ward")
	} else if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return err
	}

	count, err := s.bedRepo.CountBedsByWardID(bed.WardID)
	if err != nil {
		return err
	}
	if ward.Capacity > 0 && count >= int64(ward.Capacity) {
		return apperrors.NewValidationError("ward is at configured bed capacity")
	}

	bed.Status = models.BedAvailable
	if err := s.bedRepo.CreateBed(bed); err != nil {
		return err
	}

	details := fmt.Sprintf("Added bed %s to ward %s", bed.BedNumber, ward.Code)
	_ = s.auditRepo.CreateAuditLog(&userID, "bed_create", details)
	return nil
}

// UpdateBedStatus performs a housekeeping transition (cleaning/maintenance
// flows). Occupying a bed is rejected here: that transition belongs to the
// admission workflow alone.
func (s *WardService) UpdateBedStatus(bedID uint, status models.BedStatus, userID uint) (*models.Bed, error) {
	if !models.ValidBedStatus(status) {
		return nil, apperrors.NewValidationError("unknown bed status")
	}
	if status == models.BedOccupied {
		return nil, apperrors.NewValidationError("beds are occupied through admission, not status updates")
	}

	bed, err := s.bedRepo.GetBedByID(bedID)
	if err != nil {
		return nil, err
	}
	if bed.Status == models.BedOccupied {
		return nil, apperrors.NewValidationError("bed has an open admission; discharge the patient first")
	}
	if !models.CanTransition(bed.Status, status) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid bed status transition: %s -> %s", bed.Status, status))
	}

	if err := s.bedRepo.UpdateBedStatus(bedID, bed.Status, status); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Bed %s status: %s -> %s", bed.BedNumber, bed.Status, status)
	_ = s.auditRepo.CreateAuditLog(&userID, "bed_status_update", details)

	bed.Status = status
	return bed, nil
}
