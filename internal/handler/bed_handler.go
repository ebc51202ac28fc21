package handler

import (
	"net/http"
	"strconv"

	"hospital-ward-management/internal/models"
	"hospital-ward-management/internal/service"
	"hospital-ward-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	wardService *service.WardService
}

func NewBedHandler(wardService *service.WardService) *BedHandler {
	return &BedHandler{
		wardService: wardService,
	}
}

type updateBedStatusRequest struct {
	Status models.BedStatus `json:"status" binding:"required"`
}

// UpdateBedStatus handles housekeeping transitions (cleaning/maintenance).
// Setting a bed to occupied is rejected; only an admission does that.
func (h *BedHandler) UpdateBedStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	var req updateBedStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	bed, err := h.wardService.UpdateBedStatus(uint(id), req.Status, userID.(uint))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}
