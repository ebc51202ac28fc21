package handler

import (
	"net/http"
	"strconv"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type dischargeRequest struct {
	DischargeType models.DischargeType `json:"discharge_type" binding:"required"`
	Notes         string               `json:"notes"`
}

// Admit admits a patient to a bed. Returns 201 with the admission, or 409
// if the bed was taken first.
func (h *AdmissionHandler) Admit(c *gin.Context) {
	var req service.AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	adm, err := h.admissionService.AdmitPatient(&req, userID.(uint))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.CreatedResponse(c, adm)
}

// Discharge closes an open admission. A second discharge of the same
// admission returns 409.
func (h *AdmissionHandler) Discharge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	var req dischargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	adm, err := h.admissionService.DischargePatient(uint(id), req.DischargeType, req.Notes, userID.(uint))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, adm)
}

// GetAdmission retrieves a single admission with patient, ward and bed
func (h *AdmissionHandler) GetAdmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	adm, err := h.admissionService.GetAdmission(uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, adm)
}

// ListPatientAdmissions retrieves a patient's admission history
func (h *AdmissionHandler) ListPatientAdmissions(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	admissions, err := h.admissionService.ListPatientAdmissions(uint(patientID))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"admissions": admissions,
		"count":      len(admissions),
	})
}
