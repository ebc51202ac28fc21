package handler

import (
	"net/http"
	"strconv"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WardHandler struct {
	wardService *service.WardService
}

func NewWardHandler(wardService *service.WardService) *WardHandler {
	return &WardHandler{
		wardService: wardService,
	}
}

type createWardRequest struct {
	Code              string `json:"code" binding:"required,max=50"`
	Name              string `json:"name" binding:"required,max=255"`
	Type              string `json:"type" binding:"omitempty,oneof=general icu maternity pediatric surgical"`
	GenderRestriction string `json:"gender_restriction" binding:"omitempty,oneof=none male female"`
	Capacity          int    `json:"capacity" binding:"required,min=1"`
}

type createBedRequest struct {
	BedNumber string `json:"bed_number" binding:"required,max=50"`
	Type      string `json:"type" binding:"omitempty,max=50"`
}

// ListWards returns all wards with derived occupancy counts
func (h *WardHandler) ListWards(c *gin.Context) {
	wards, err := h.wardService.ListWards()
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wards": wards,
		"count": len(wards),
	})
}

// GetWard returns a ward with its beds and each occupied bed's patient
func (h *WardHandler) GetWard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ward ID")
		return
	}

	detail, err := h.wardService.GetWardDetail(uint(id))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// CreateWard creates a new ward (admin only)
func (h *WardHandler) CreateWard(c *gin.Context) {
	var req createWardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ward := &models.Ward{
		Code:              req.Code,
		Name:              req.Name,
		Type:              req.Type,
		GenderRestriction: req.GenderRestriction,
		Capacity:          req.Capacity,
		IsActive:          true,
	}
	if ward.Type == "" {
		ward.Type = "general"
	}
	if ward.GenderRestriction == "" {
		ward.GenderRestriction = "none"
	}

	userID, _ := c.Get("userID")
	if err := h.wardService.CreateWard(ward, userID.(uint)); err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.CreatedResponse(c, ward)
}

// CreateBed adds a bed to a ward (admin only)
func (h *WardHandler) CreateBed(c *gin.Context) {
	wardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ward ID")
		return
	}

	var req createBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed := &models.Bed{
		WardID:    uint(wardID),
		BedNumber: req.BedNumber,
		Type:      req.Type,
	}
	if bed.Type == "" {
		bed.Type = "standard"
	}

	userID, _ := c.Get("userID")
	if err := h.wardService.CreateBed(bed, userID.(uint)); err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.CreatedResponse(c, bed)
}
