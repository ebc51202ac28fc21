package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory implementation of the service-layer storage
// interfaces, so handler tests exercise real services end to end without a
// database.
type fakeStore struct {
	wards      map[uint]models.Ward
	beds       map[uint]models.Bed
	patients   map[uint]models.Patient
	admissions map[uint]models.Admission
	nextID     uint
	actions    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		wards:      make(map[uint]models.Ward),
		beds:       make(map[uint]models.Bed),
		patients:   make(map[uint]models.Patient),
		admissions: make(map[uint]models.Admission),
		nextID:     100,
	}
}

func (f *fakeStore) allocID() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) GetAllWards() ([]models.Ward, error) {
	wards := make([]models.Ward, 0, len(f.wards))
	for _, w := range f.wards {
		if w.IsActive {
			wards = append(wards, w)
		}
	}
	sort.Slice(wards, func(i, j int) bool { return wards[i].Code < wards[j].Code })
	return wards, nil
}

func (f *fakeStore) GetWardByID(id uint) (*models.Ward, error) {
	w, ok := f.wards[id]
	if !ok || !w.IsActive {
		return nil, apperrors.NewNotFoundError("ward not found")
	}
	return &w, nil
}

func (f *fakeStore) GetWardByCode(code string) (*models.Ward, error) {
	for _, w := range f.wards {
		if w.Code == code && w.IsActive {
			ward := w
			return &ward, nil
		}
	}
	return nil, apperrors.NewNotFoundError("ward not found")
}

func (f *fakeStore) CreateWard(ward *models.Ward) error {
	ward.ID = f.allocID()
	f.wards[ward.ID] = *ward
	return nil
}

func (f *fakeStore) GetOccupancy() (map[uint]models.WardOccupancy, error) {
	occupancy := make(map[uint]models.WardOccupancy)
	for _, b := range f.beds {
		counts := occupancy[b.WardID]
		counts.TotalBeds++
		if b.Status == models.BedOccupied {
			counts.OccupiedBeds++
		}
		occupancy[b.WardID] = counts
	}
	return occupancy, nil
}

func (f *fakeStore) GetBedByID(id uint) (*models.Bed, error) {
	b, ok := f.beds[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("bed not found")
	}
	return &b, nil
}

func (f *fakeStore) GetBedsByWardID(wardID uint) ([]models.Bed, error) {
	beds := make([]models.Bed, 0)
	for _, b := range f.beds {
		if b.WardID == wardID {
			beds = append(beds, b)
		}
	}
	sort.Slice(beds, func(i, j int) bool { return beds[i].BedNumber < beds[j].BedNumber })
	return beds, nil
}

func (f *fakeStore) GetBedByNumberAndWard(bedNumber string, wardID uint) (*models.Bed, error) {
	for _, b := range f.beds {
		if b.WardID == wardID && b.BedNumber == bedNumber {
			bed := b
			return &bed, nil
		}
	}
	return nil, apperrors.NewNotFoundError("bed not found")
}

func (f *fakeStore) CountBedsByWardID(wardID uint) (int64, error) {
	var count int64
	for _, b := range f.beds {
		if b.WardID == wardID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CreateBed(bed *models.Bed) error {
	bed.ID = f.allocID()
	f.beds[bed.ID] = *bed
	return nil
}

func (f *fakeStore) UpdateBedStatus(id uint, from, to models.BedStatus) error {
	b, ok := f.beds[id]
	if !ok || b.Status != from {
		return apperrors.NewConflictError("bed status changed concurrently")
	}
	b.Status = to
	f.beds[id] = b
	return nil
}

func (f *fakeStore) Admit(adm *models.Admission) error {
	b, ok := f.beds[adm.BedID]
	if !ok || b.Status != models.BedAvailable {
		return apperrors.NewConflictError("bed is not available")
	}
	b.Status = models.BedOccupied
	f.beds[adm.BedID] = b
	adm.ID = f.allocID()
	f.admissions[adm.ID] = *adm
	return nil
}

func (f *fakeStore) Discharge(id uint, dischargeType models.DischargeType, notes string, dischargedBy uint, at time.Time) error {
	adm, ok := f.admissions[id]
	if !ok {
		return apperrors.NewNotFoundError("admission not found")
	}
	if adm.DischargedAt != nil {
		return apperrors.NewConflictError("admission already discharged")
	}
	adm.DischargedAt = &at
	adm.DischargeType = &dischargeType
	adm.DischargeNotes = notes
	adm.DischargedBy = &dischargedBy
	f.admissions[id] = adm

	b := f.beds[adm.BedID]
	b.Status = models.BedAvailable
	f.beds[adm.BedID] = b
	return nil
}

func (f *fakeStore) GetAdmissionByID(id uint) (*models.Admission, error) {
	adm, ok := f.admissions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("admission not found")
	}
	adm.Patient = f.patients[adm.PatientID]
	adm.Ward = f.wards[adm.WardID]
	adm.Bed = f.beds[adm.BedID]
	return &adm, nil
}

func (f *fakeStore) GetOpenAdmissionsByWardID(wardID uint) ([]models.Admission, error) {
	open := make([]models.Admission, 0)
	for _, adm := range f.admissions {
		if adm.WardID == wardID && adm.DischargedAt == nil {
			adm.Patient = f.patients[adm.PatientID]
			open = append(open, adm)
		}
	}
	return open, nil
}

func (f *fakeStore) ListAdmissionsByPatientID(patientID uint) ([]models.Admission, error) {
	admissions := make([]models.Admission, 0)
	for _, adm := range f.admissions {
		if adm.PatientID == patientID {
			admissions = append(admissions, adm)
		}
	}
	sort.Slice(admissions, func(i, j int) bool {
		return admissions[i].AdmittedAt.After(admissions[j].AdmittedAt)
	})
	return admissions, nil
}

func (f *fakeStore) GetPatientByID(id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("patient not found")
	}
	return &p, nil
}

func (f *fakeStore) CreateAuditLog(userID *uint, action string, details string) error {
	f.actions = append(f.actions, action)
	return nil
}

// seedWardWithBeds adds a ward with one available and one occupied bed, the
// occupied bed backed by an open admission for the seeded patient.
func (f *fakeStore) seedWardWithBeds() (wardID, availableBedID, occupiedBedID, patientID, admissionID uint) {
	wardID = f.allocID()
	f.wards[wardID] = models.Ward{
		ID: wardID, Code: "GEN-1", Name: "General Ward 1",
		Type: "general", GenderRestriction: "none", Capacity: 10, IsActive: true,
	}

	patientID = f.allocID()
	f.patients[patientID] = models.Patient{
		ID: patientID, MRN: "MRN-1A2B3C4D", FirstName: "Ada", LastName: "Obi", IsActive: true,
	}

	availableBedID = f.allocID()
	f.beds[availableBedID] = models.Bed{
		ID: availableBedID, WardID: wardID, BedNumber: "B-01",
		Type: "standard", Status: models.BedAvailable,
	}

	occupiedBedID = f.allocID()
	f.beds[occupiedBedID] = models.Bed{
		ID: occupiedBedID, WardID: wardID, BedNumber: "B-02",
		Type: "standard", Status: models.BedOccupied,
	}

	admissionID = f.allocID()
	f.admissions[admissionID] = models.Admission{
		ID: admissionID, PatientID: patientID, WardID: wardID, BedID: occupiedBedID,
		Reason: "observation", Diagnosis: "pneumonia", AdmittedBy: 1,
		AdmittedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
	return
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	wardSvc := service.NewWardService(store, store, store, store)
	admSvc := service.NewAdmissionService(store, store, store, store, store)

	wardHandler := NewWardHandler(wardSvc)
	bedHandler := NewBedHandler(wardSvc)
	admHandler := NewAdmissionHandler(admSvc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) })

	r.GET("/wards", wardHandler.ListWards)
	r.GET("/wards/:id", wardHandler.GetWard)
	r.POST("/wards", wardHandler.CreateWard)
	r.POST("/wards/:id/beds", wardHandler.CreateBed)
	r.PATCH("/beds/:id", bedHandler.UpdateBedStatus)
	r.POST("/admissions", admHandler.Admit)
	r.POST("/admissions/:id/discharge", admHandler.Discharge)
	r.GET("/admissions/:id", admHandler.GetAdmission)
	r.GET("/patients/:id/admissions", admHandler.ListPatientAdmissions)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
