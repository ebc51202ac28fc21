package handler

import (
	"net/http"
	"strconv"
	"time"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type createPatientRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
}

// CreatePatient registers a new patient; the MRN is generated server-side
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient := &models.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Phone:     req.Phone,
	}
	if patient.Gender == "" {
		patient.Gender = "other"
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
			return
		}
		patient.DateOfBirth = &dob
	}

	userID, _ := c.Get("userID")
	if err := h.patientService.CreatePatient(patient, userID.(uint)); err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.CreatedResponse(c, patient)
}

// GetPatient retrieves a patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// ListPatients retrieves patients, optionally filtered by ?search=
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients(c.Query("search"))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}
