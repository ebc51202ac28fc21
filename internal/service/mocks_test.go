package service

import (
	"time"

	"hospital-ward-management/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockWardRepo is a mock implementation of WardRepository
type MockWardRepo struct {
	mock.Mock
}

func (m *MockWardRepo) GetAllWards() ([]models.Ward, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ward), args.Error(1)
}

func (m *MockWardRepo) GetWardByID(id uint) (*models.Ward, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ward), args.Error(1)
}

func (m *MockWardRepo) GetWardByCode(code string) (*models.Ward, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ward), args.Error(1)
}

func (m *MockWardRepo) CreateWard(ward *models.Ward) error {
	args := m.Called(ward)
	return args.Error(0)
}

func (m *MockWardRepo) GetOccupancy() (map[uint]models.WardOccupancy, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]models.WardOccupancy), args.Error(1)
}

// MockBedRepo is a mock implementation of BedRepository
type MockBedRepo struct {
	mock.Mock
}

func (m *MockBedRepo) GetBedByID(id uint) (*models.Bed, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bed), args.Error(1)
}

func (m *MockBedRepo) GetBedsByWardID(wardID uint) ([]models.Bed, error) {
	args := m.Called(wardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bed), args.Error(1)
}

func (m *MockBedRepo) GetBedByNumberAndWard(bedNumber string, wardID uint) (*models.Bed, error) {
	args := m.Called(bedNumber, wardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bed), args.Error(1)
}

func (m *MockBedRepo) CountBedsByWardID(wardID uint) (int64, error) {
	args := m.Called(wardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBedRepo) CreateBed(bed *models.Bed) error {
	args := m.Called(bed)
	return args.Error(0)
}

func (m *MockBedRepo) UpdateBedStatus(id uint, from, to models.BedStatus) error {
	args := m.Called(id, from, to)
	return args.Error(0)
}

// MockAdmissionRepo is a mock implementation of AdmissionRepository
type MockAdmissionRepo struct {
	mock.Mock
}

func (m *MockAdmissionRepo) Admit(adm *models.Admission) error {
	args := m.Called(adm)
	return args.Error(0)
}

func (m *MockAdmissionRepo) Discharge(id uint, dischargeType models.DischargeType, notes string, dischargedBy uint, at time.Time) error {
	args := m.Called(id, dischargeType, notes, dischargedBy, at)
	return args.Error(0)
}

func (m *MockAdmissionRepo) GetAdmissionByID(id uint) (*models.Admission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admission), args.Error(1)
}

func (m *MockAdmissionRepo) GetOpenAdmissionsByWardID(wardID uint) ([]models.Admission, error) {
	args := m.Called(wardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admission), args.Error(1)
}

func (m *MockAdmissionRepo) ListAdmissionsByPatientID(patientID uint) ([]models.Admission, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admission), args.Error(1)
}

// MockPatientRepo is a mock implementation of PatientRepository
type MockPatientRepo struct {
	mock.Mock
}

func (m *MockPatientRepo) GetPatientByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepo) GetPatientByMRN(mrn string) (*models.Patient, error) {
	args := m.Called(mrn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepo) CreatePatient(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepo) ListPatients(search string) ([]models.Patient, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

// MockUserRepo is a mock implementation of UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserRepo) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockUserRepo) RevokeRefreshTokenByHash(hash string) error {
	args := m.Called(hash)
	return args.Error(0)
}

// MockAuditRepo is a mock implementation of AuditLogger
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) CreateAuditLog(userID *uint, action string, details string) error {
	args := m.Called(userID, action, details)
	return args.Error(0)
}
